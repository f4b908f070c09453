package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finagent/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// ComponentStatus is the health of one dependency.
type ComponentStatus struct {
	Status string `json:"status" example:"ok"`
}

// HealthResponse is the service health report.
type HealthResponse struct {
	Status  string                     `json:"status" example:"ok"`
	Details map[string]ComponentStatus `json:"details"`
}

// Health checks the database connection
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Healthy"
// @Failure     503 {object} HealthResponse "Unhealthy"
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Details: map[string]ComponentStatus{"database": {Status: "ok"}}}
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		logger.Get().Warnw("health check failed", "component", "database", "error", err)
		resp.Status = "error"
		resp.Details["database"] = ComponentStatus{Status: "error"}
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
