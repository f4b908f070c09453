package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/services"
)

// DividendHandler handles dividend payment requests.
type DividendHandler struct {
	dividendService services.DividendServicer
	auditService    services.AuditServicer
}

// NewDividendHandler creates a new DividendHandler.
func NewDividendHandler(dividendService services.DividendServicer, auditService services.AuditServicer) *DividendHandler {
	return &DividendHandler{dividendService: dividendService, auditService: auditService}
}

// CreateDividendRequest represents the request payload for recording a dividend
type CreateDividendRequest struct {
	AmountPerShare *decimal.Decimal `json:"amount_per_share" binding:"required" swaggertype:"string" example:"0.50"`
	PaymentDate    string           `json:"payment_date" binding:"required" example:"2025-03-01"`
}

// UpdateDividendRequest represents a correction to a dividend
type UpdateDividendRequest struct {
	AmountPerShare *decimal.Decimal `json:"amount_per_share" swaggertype:"string" example:"0.55"`
	PaymentDate    *string          `json:"payment_date" example:"2025-03-02"`
}

// DividendResponse represents a dividend in the response
type DividendResponse struct {
	ID             string    `json:"id"`
	AssetID        string    `json:"asset_id"`
	AmountPerShare string    `json:"amount_per_share" example:"0.5"`
	PaymentDate    string    `json:"payment_date" example:"2025-03-01"`
	CreatedAt      time.Time `json:"created_at"`
}

func newDividendResponse(d *models.Dividend) DividendResponse {
	return DividendResponse{
		ID:             d.ID,
		AssetID:        d.AssetID,
		AmountPerShare: d.AmountPerShare.String(),
		PaymentDate:    d.PaymentDate.Format(time.DateOnly),
		CreatedAt:      d.CreatedAt,
	}
}

// CreateDividend records a dividend payment for an asset
// @Summary     Record a dividend
// @Tags        dividends
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker  path string                true "Ticker"
// @Param       request body CreateDividendRequest true "Dividend details"
// @Success     201 {object} DividendResponse "Dividend created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker}/dividends [post]
func (h *DividendHandler) CreateDividend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDividendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.PaymentDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dividend, err := h.dividendService.CreateDividend(c.Param("ticker"), services.DividendInput{
		AmountPerShare: *req.AmountPerShare,
		Date:           date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditCreateDividend,
		Resource:   "dividend",
		ResourceID: dividend.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"ticker": c.Param("ticker"), "amount_per_share": req.AmountPerShare.String()},
	})

	c.JSON(http.StatusCreated, gin.H{"dividend": newDividendResponse(dividend)})
}

// ListDividends returns an asset's dividend payments
// @Summary     List dividends for an asset
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path  string true  "Ticker"
// @Param       skip   query int    false "Rows to skip (default 0)"
// @Param       limit  query int    false "Rows to return (default 100, max 1000)"
// @Success     200 {array}  DividendResponse "Dividends"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker}/dividends [get]
func (h *DividendHandler) ListDividends(c *gin.Context) {
	skip, limit, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dividends, err := h.dividendService.ListDividends(c.Param("ticker"), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]DividendResponse, 0, len(dividends))
	for i := range dividends {
		items = append(items, newDividendResponse(&dividends[i]))
	}
	c.JSON(http.StatusOK, gin.H{"dividends": items})
}

// GetDividend returns one dividend payment
// @Summary     Get a dividend
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Dividend ID"
// @Success     200 {object} DividendResponse "Dividend"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dividend not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends/{id} [get]
func (h *DividendHandler) GetDividend(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	dividend, err := h.dividendService.GetDividend(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dividend": newDividendResponse(dividend)})
}

// UpdateDividend corrects a dividend payment
// @Summary     Update a dividend
// @Tags        dividends
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Dividend ID"
// @Param       request body UpdateDividendRequest true "Fields to update"
// @Success     200 {object} DividendResponse "Dividend updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dividend not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends/{id} [put]
func (h *DividendHandler) UpdateDividend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDividendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.DividendUpdate{AmountPerShare: req.AmountPerShare}
	if req.PaymentDate != nil {
		date, err := parseDate(*req.PaymentDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Date = &date
	}

	dividend, err := h.dividendService.UpdateDividend(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditUpdateDividend,
		Resource:   "dividend",
		ResourceID: dividend.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"amount_per_share": req.AmountPerShare, "payment_date": req.PaymentDate},
	})

	c.JSON(http.StatusOK, gin.H{"dividend": newDividendResponse(dividend)})
}

// DeleteDividend removes a dividend payment
// @Summary     Delete a dividend
// @Tags        dividends
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Dividend ID"
// @Success     200 {object} map[string]string "Dividend deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Dividend not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dividends/{id} [delete]
func (h *DividendHandler) DeleteDividend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dividendService.DeleteDividend(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditDeleteDividend,
		Resource:   "dividend",
		ResourceID: id,
		IPAddress:  c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Dividend deleted successfully"})
}
