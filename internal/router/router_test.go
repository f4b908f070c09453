package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finagent/internal/config"
	"finagent/internal/database"
	"finagent/internal/logger"
	"finagent/internal/marketdata"
	"finagent/internal/services"
	"finagent/internal/testutil"
	"finagent/internal/validator"
)

// testApp holds the full application stack for router tests.
type testApp struct {
	DB     *gorm.DB
	Deps   Deps
	Prices *marketdata.StaticSource
	Router *gin.Engine
}

type dbPinger struct{ db *gorm.DB }

func (p dbPinger) Ping(ctx context.Context) error { return database.Ping(ctx, p.db) }

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	config.Get().JWTSecret = "test-secret"
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite and a static price source. configure may set Agents before the
// router is built.
func setupApp(t *testing.T, configure func(app *testApp)) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	prices := marketdata.NewStaticSource(map[string]decimal.Decimal{})
	app := &testApp{DB: db, Prices: prices, Deps: NewDeps(db, dbPinger{db}, prices)}
	app.Deps.Users = services.NewUserService(db, services.WithPasswordCost(bcrypt.MinCost))
	if configure != nil {
		configure(app)
	}
	app.Router = New(app.Deps)
	return app
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest fails the test unless the response has the wanted status.
func (app *testApp) mustRequest(t *testing.T, want int, method, path, body, token string) map[string]interface{} {
	t.Helper()
	rec := app.request(method, path, body, token)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	result := app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/auth/register", body, "")
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	result := app.mustRequest(t, http.StatusOK, "POST", "/api/v1/auth/login", body, "")
	return result["access_token"].(string), result["refresh_token"].(string)
}

func errorCode(result map[string]interface{}) string {
	errObj, _ := result["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	app := setupApp(t, nil)

	result := app.mustRequest(t, http.StatusOK, "GET", "/health", "", "")
	if result["status"] != "ok" {
		t.Errorf("expected ok, got %v", result["status"])
	}

	sqlDB, err := app.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	_ = sqlDB.Close()

	result = app.mustRequest(t, http.StatusServiceUnavailable, "GET", "/health", "", "")
	if result["status"] != "error" {
		t.Errorf("expected error, got %v", result["status"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	app := setupApp(t, nil)

	rec := app.request("GET", "/health", "", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestCORSPreflight(t *testing.T) {
	app := setupApp(t, nil)

	rec := app.request("OPTIONS", "/api/v1/assets", "", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t, nil)

	routes := []struct{ method, path string }{
		{"GET", "/api/v1/profile"},
		{"GET", "/api/v1/assets"},
		{"POST", "/api/v1/assets"},
		{"GET", "/api/v1/assets/ITSA4.SA/transactions"},
		{"GET", "/api/v1/assets/ITSA4.SA/analysis"},
		{"GET", "/api/v1/portfolio/analysis"},
		{"POST", "/api/v1/agent/query/router"},
		{"POST", "/api/v1/agent/query/analysis_agent"},
		{"GET", "/api/v1/agent-actions"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := app.request(rt.method, rt.path, "{}", "")
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
			if code := errorCode(parseJSON(t, rec)); code != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED, got %q", code)
			}
		})
	}
}
