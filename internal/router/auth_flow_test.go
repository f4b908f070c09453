package router

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	app := setupApp(t, nil)

	access, refresh, userID := app.registerUser(t, "alice@example.com", "password123")

	profile := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/profile", "", access)
	user := profile["user"].(map[string]interface{})
	if user["id"] != userID || user["email"] != "alice@example.com" {
		t.Errorf("unexpected profile %v", user)
	}

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/register", `{"email":"alice@example.com","password":"password123"}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(parseJSON(t, rec)); code != "DUPLICATE_EMAIL" {
			t.Errorf("expected DUPLICATE_EMAIL, got %q", code)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/login", `{"email":"alice@example.com","password":"nope-nope"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("login issues usable tokens", func(t *testing.T) {
		token, _ := app.loginUser(t, "alice@example.com", "password123")
		app.mustRequest(t, http.StatusOK, "GET", "/api/v1/profile", "", token)
	})

	t.Run("refresh token cannot authenticate requests", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/profile", "", refresh)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("refresh rotates the stored token", func(t *testing.T) {
		// Log in again so the refresh token below is the one on record.
		_, current := app.loginUser(t, "alice@example.com", "password123")

		result := app.mustRequest(t, http.StatusOK, "POST", "/api/v1/auth/refresh",
			fmt.Sprintf(`{"refresh_token":%q}`, current), "")
		rotated := result["refresh_token"].(string)
		if rotated == "" || rotated == current {
			t.Fatal("expected a new refresh token")
		}
		rec := app.request("POST", "/api/v1/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, current), "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected the old refresh token to be rejected, got %d", rec.Code)
		}
	})
}
