package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		want       string
	}{
		{"healthy", nil, http.StatusOK, "ok"},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(pingerFunc(func(_ context.Context) error { return tt.pingErr }))
			r := gin.New()
			r.GET("/health", h.Health)

			rec := doRequest(r, "GET", "/health", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			result := parseJSON(t, rec)
			if result["status"] != tt.want {
				t.Errorf("expected status %q, got %v", tt.want, result["status"])
			}
			db := result["details"].(map[string]interface{})["database"].(map[string]interface{})
			if db["status"] != tt.want {
				t.Errorf("expected database status %q, got %v", tt.want, db["status"])
			}
		})
	}
}
