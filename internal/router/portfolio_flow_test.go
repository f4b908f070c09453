package router

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPortfolioFlow(t *testing.T) {
	app := setupApp(t, nil)
	token, _, _ := app.registerUser(t, "investor@example.com", "password123")

	// Register the asset with a lower-case ticker; it is stored upper-cased.
	created := app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets",
		`{"ticker":"itsa4.sa","name":"Itausa","asset_type":"stock","sector":"Financials"}`, token)
	asset := created["asset"].(map[string]interface{})
	if asset["ticker"] != "ITSA4.SA" {
		t.Fatalf("expected ITSA4.SA, got %v", asset["ticker"])
	}

	rec := app.request("POST", "/api/v1/assets", `{"ticker":"ITSA4.SA"}`, token)
	if rec.Code != http.StatusBadRequest || errorCode(parseJSON(t, rec)) != "DUPLICATE_ASSET" {
		t.Fatalf("expected 400 DUPLICATE_ASSET, got %d: %s", rec.Code, rec.Body.String())
	}

	// Two buys, one dividend.
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets/ITSA4.SA/transactions",
		`{"quantity":"100","price":"10","transaction_date":"2025-01-10"}`, token)
	second := app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets/ITSA4.SA/transactions",
		`{"quantity":50,"price":12,"transaction_date":"2025-02-10"}`, token)
	secondID := second["transaction"].(map[string]interface{})["id"].(string)
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets/ITSA4.SA/dividends",
		`{"amount_per_share":"0.50","payment_date":"2025-03-01"}`, token)

	list := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets/ITSA4.SA/transactions", "", token)
	txs := list["transactions"].([]interface{})
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if first := txs[0].(map[string]interface{}); first["transaction_date"] != "2025-01-10" {
		t.Errorf("expected date order, got %v first", first["transaction_date"])
	}

	t.Run("analysis without a market price", func(t *testing.T) {
		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets/ITSA4.SA/analysis", "", token)
		want := map[string]string{
			"total_quantity":           "150",
			"average_price":            "10.67",
			"total_invested":           "1600.50",
			"total_dividends_received": "75.00",
		}
		for k, v := range want {
			if result[k] != v {
				t.Errorf("%s: expected %q, got %v", k, v, result[k])
			}
		}
		if result["current_market_price"] != nil || result["financial_return_percent"] != nil {
			t.Errorf("expected null price fields, got %v", result)
		}
	})

	t.Run("analysis with a market price", func(t *testing.T) {
		app.Prices.Set("ITSA4.SA", decimal.NewFromInt(15))

		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets/itsa4.sa/analysis", "", token)
		if result["financial_return_value"] != "649.50" || result["financial_return_percent"] != "40.58" {
			t.Errorf("unexpected return fields %v / %v", result["financial_return_value"], result["financial_return_percent"])
		}
	})

	t.Run("a sell leaves the average price alone", func(t *testing.T) {
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets/ITSA4.SA/transactions",
			`{"quantity":"-30","price":"14","transaction_date":"2025-04-01"}`, token)

		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets/ITSA4.SA/analysis", "", token)
		if result["total_quantity"] != "120" || result["average_price"] != "10.67" {
			t.Errorf("unexpected position %v @ %v", result["total_quantity"], result["average_price"])
		}
	})

	t.Run("correcting a price changes the analysis", func(t *testing.T) {
		app.mustRequest(t, http.StatusOK, "PUT", "/api/v1/transactions/"+secondID, `{"price":"13"}`, token)

		got := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/transactions/"+secondID, "", token)
		if price := got["transaction"].(map[string]interface{})["price"]; price != "13" {
			t.Errorf("expected price 13, got %v", price)
		}
	})

	t.Run("portfolio analysis is ordered by ticker", func(t *testing.T) {
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets", `{"ticker":"BBAS3.SA"}`, token)

		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/portfolio/analysis", "", token)
		analyses := result["analyses"].([]interface{})
		if len(analyses) != 2 {
			t.Fatalf("expected 2 analyses, got %d", len(analyses))
		}
		if analyses[0].(map[string]interface{})["ticker"] != "BBAS3.SA" {
			t.Errorf("expected BBAS3.SA first, got %v", analyses[0])
		}
	})

	t.Run("assets are paginated", func(t *testing.T) {
		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets?page=1&page_size=1", "", token)
		if result["total_items"] != float64(2) || result["total_pages"] != float64(2) {
			t.Errorf("unexpected page metadata %v", result)
		}
	})

	t.Run("deleting an asset removes its ledger", func(t *testing.T) {
		app.mustRequest(t, http.StatusOK, "DELETE", "/api/v1/assets/ITSA4.SA", "", token)

		rec := app.request("GET", "/api/v1/transactions/"+secondID, "", token)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 for orphaned transaction, got %d", rec.Code)
		}
		rec = app.request("GET", "/api/v1/assets/ITSA4.SA/analysis", "", token)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 for deleted asset, got %d", rec.Code)
		}

		// The ticker can be registered again.
		app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets", `{"ticker":"ITSA4.SA"}`, token)
	})

	t.Run("mutations are audited", func(t *testing.T) {
		var count int64
		if err := app.DB.Table("audit_logs").Where("action LIKE ?", "%_TRANSACTION").Count(&count).Error; err != nil {
			t.Fatalf("failed to count audit logs: %v", err)
		}
		if count < 4 {
			t.Errorf("expected at least 4 transaction audit entries, got %d", count)
		}
	})
}

func TestLedgerValidation(t *testing.T) {
	app := setupApp(t, nil)
	token, _, _ := app.registerUser(t, "strict@example.com", "password123")
	app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets", `{"ticker":"PETR4.SA"}`, token)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode string
	}{
		{"negative price", "/api/v1/assets/PETR4.SA/transactions",
			`{"quantity":"10","price":"-1","transaction_date":"2025-01-01"}`, "INVALID_AMOUNT"},
		{"negative dividend", "/api/v1/assets/PETR4.SA/dividends",
			`{"amount_per_share":"-0.1","payment_date":"2025-01-01"}`, "INVALID_AMOUNT"},
		{"unknown asset", "/api/v1/assets/NOPE/transactions",
			`{"quantity":"10","price":"1","transaction_date":"2025-01-01"}`, "ASSET_NOT_FOUND"},
		{"bad date", "/api/v1/assets/PETR4.SA/transactions",
			`{"quantity":"10","price":"1","transaction_date":"yesterday"}`, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("POST", tt.path, tt.body, token)
			if code := errorCode(parseJSON(t, rec)); code != tt.wantCode {
				t.Errorf("expected %s, got %q (%d)", tt.wantCode, code, rec.Code)
			}
		})
	}

	t.Run("window limits", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/assets/PETR4.SA/transactions",
				fmt.Sprintf(`{"quantity":"1","price":"%d","transaction_date":"2025-01-0%d"}`, i+1, i+1), token)
		}
		result := app.mustRequest(t, http.StatusOK, "GET", "/api/v1/assets/PETR4.SA/transactions?skip=1&limit=1", "", token)
		txs := result["transactions"].([]interface{})
		if len(txs) != 1 || txs[0].(map[string]interface{})["price"] != "2" {
			t.Errorf("unexpected window %v", txs)
		}
	})
}
