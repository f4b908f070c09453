package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/services"
)

const testDividendID = "0190a8e2-7c1d-7000-8000-0000000000c1"

type mockDividendService struct {
	createDividendFn func(ticker string, input services.DividendInput) (*models.Dividend, error)
	listDividendsFn  func(ticker string, skip, limit int) ([]models.Dividend, error)
	getDividendFn    func(id string) (*models.Dividend, error)
	updateDividendFn func(id string, input services.DividendUpdate) (*models.Dividend, error)
	deleteDividendFn func(id string) error
}

func (m *mockDividendService) CreateDividend(ticker string, input services.DividendInput) (*models.Dividend, error) {
	if m.createDividendFn != nil {
		return m.createDividendFn(ticker, input)
	}
	return &models.Dividend{}, nil
}

func (m *mockDividendService) ListDividends(ticker string, skip, limit int) ([]models.Dividend, error) {
	if m.listDividendsFn != nil {
		return m.listDividendsFn(ticker, skip, limit)
	}
	return nil, nil
}

func (m *mockDividendService) GetDividend(id string) (*models.Dividend, error) {
	if m.getDividendFn != nil {
		return m.getDividendFn(id)
	}
	return &models.Dividend{}, nil
}

func (m *mockDividendService) UpdateDividend(id string, input services.DividendUpdate) (*models.Dividend, error) {
	if m.updateDividendFn != nil {
		return m.updateDividendFn(id, input)
	}
	return &models.Dividend{}, nil
}

func (m *mockDividendService) DeleteDividend(id string) error {
	if m.deleteDividendFn != nil {
		return m.deleteDividendFn(id)
	}
	return nil
}

func (m *mockDividendService) DividendsForAsset(_ string) ([]models.Dividend, error) {
	return nil, nil
}

func setupDividendRouter(handler *DividendHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/", injectUserID(testUserID))
	auth.POST("/assets/:ticker/dividends", handler.CreateDividend)
	auth.GET("/assets/:ticker/dividends", handler.ListDividends)
	auth.GET("/dividends/:id", handler.GetDividend)
	auth.PUT("/dividends/:id", handler.UpdateDividend)
	auth.DELETE("/dividends/:id", handler.DeleteDividend)
	return r
}

func testDividend(amount string, date time.Time) *models.Dividend {
	return &models.Dividend{
		Base:           models.Base{ID: testDividendID},
		AssetID:        "0190a8e2-7c1d-7000-8000-0000000000a1",
		AmountPerShare: decimal.RequireFromString(amount),
		PaymentDate:    date,
	}
}

func TestDividendHandler_CreateDividend(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.DividendInput
		svc := &mockDividendService{
			createDividendFn: func(_ string, input services.DividendInput) (*models.Dividend, error) {
				got = input
				return testDividend(input.AmountPerShare.String(), input.Date), nil
			},
		}
		audit := &mockAuditService{}
		r := setupDividendRouter(NewDividendHandler(svc, audit))

		rec := doRequest(r, "POST", "/assets/ITSA4.SA/dividends", `{"amount_per_share":0.5,"payment_date":"2025-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.AmountPerShare.Equal(decimal.RequireFromString("0.5")) {
			t.Errorf("expected 0.5, got %s", got.AmountPerShare)
		}
		div := parseJSON(t, rec)["dividend"].(map[string]interface{})
		if div["payment_date"] != "2025-03-01" {
			t.Errorf("expected 2025-03-01, got %v", div["payment_date"])
		}
		if acts := audit.actions(); len(acts) != 1 || acts[0] != "CREATE_DIVIDEND" {
			t.Errorf("expected CREATE_DIVIDEND audit entry, got %v", acts)
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		svc := &mockDividendService{
			createDividendFn: func(_ string, _ services.DividendInput) (*models.Dividend, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		r := setupDividendRouter(NewDividendHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/assets/ITSA4.SA/dividends", `{"amount_per_share":"-1","payment_date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		r := setupDividendRouter(NewDividendHandler(&mockDividendService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/assets/ITSA4.SA/dividends", `{"payment_date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDividendHandler_ListDividends(t *testing.T) {
	svc := &mockDividendService{
		listDividendsFn: func(ticker string, _, _ int) ([]models.Dividend, error) {
			if ticker != "ITSA4.SA" {
				t.Errorf("unexpected ticker %q", ticker)
			}
			return []models.Dividend{*testDividend("0.5", time.Now())}, nil
		},
	}
	r := setupDividendRouter(NewDividendHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/assets/ITSA4.SA/dividends", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if items := parseJSON(t, rec)["dividends"].([]interface{}); len(items) != 1 {
		t.Errorf("expected 1 dividend, got %d", len(items))
	}
}

func TestDividendHandler_UpdateDividend(t *testing.T) {
	t.Run("updates the payment date", func(t *testing.T) {
		var got services.DividendUpdate
		svc := &mockDividendService{
			updateDividendFn: func(_ string, input services.DividendUpdate) (*models.Dividend, error) {
				got = input
				return testDividend("0.5", *input.Date), nil
			},
		}
		r := setupDividendRouter(NewDividendHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/dividends/"+testDividendID, `{"payment_date":"2025-03-02"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.AmountPerShare != nil {
			t.Error("expected amount untouched")
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockDividendService{
			updateDividendFn: func(_ string, _ services.DividendUpdate) (*models.Dividend, error) {
				return nil, apperrors.ErrDividendNotFound
			},
		}
		r := setupDividendRouter(NewDividendHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/dividends/"+testDividendID, `{"amount_per_share":"1"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DIVIDEND_NOT_FOUND")
	})
}

func TestDividendHandler_DeleteDividend(t *testing.T) {
	audit := &mockAuditService{}
	r := setupDividendRouter(NewDividendHandler(&mockDividendService{}, audit))

	rec := doRequest(r, "DELETE", "/dividends/"+testDividendID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if acts := audit.actions(); len(acts) != 1 || acts[0] != "DELETE_DIVIDEND" {
		t.Errorf("expected DELETE_DIVIDEND audit entry, got %v", acts)
	}
}
