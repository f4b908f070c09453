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

// TransactionHandler handles ledger transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. Decimal fields accept a JSON string or number.
type CreateTransactionRequest struct {
	Quantity        *decimal.Decimal `json:"quantity" binding:"required" swaggertype:"string" example:"100"`
	Price           *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"10.50"`
	TransactionDate string           `json:"transaction_date" binding:"required" example:"2025-01-15"`
}

// UpdateTransactionRequest represents a correction to a transaction.
type UpdateTransactionRequest struct {
	Quantity        *decimal.Decimal `json:"quantity" swaggertype:"string" example:"100"`
	Price           *decimal.Decimal `json:"price" swaggertype:"string" example:"10.75"`
	TransactionDate *string          `json:"transaction_date" example:"2025-01-16"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID              string    `json:"id"`
	AssetID         string    `json:"asset_id"`
	Quantity        string    `json:"quantity" example:"100"`
	Price           string    `json:"price" example:"10.5"`
	TransactionDate string    `json:"transaction_date" example:"2025-01-15"`
	CreatedAt       time.Time `json:"created_at"`
}

func newTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AssetID:         t.AssetID,
		Quantity:        t.Quantity.String(),
		Price:           t.Price.String(),
		TransactionDate: t.TransactionDate.Format(time.DateOnly),
		CreatedAt:       t.CreatedAt,
	}
}

// CreateTransaction records a buy or sell for an asset
// @Summary     Record a transaction
// @Description Record a buy (positive quantity) or sell (negative quantity) for an asset
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker  path string                   true "Ticker"
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker}/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.TransactionDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Param("ticker"), services.TransactionInput{
		Quantity: *req.Quantity,
		Price:    *req.Price,
		Date:     date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditCreateTransaction,
		Resource:   "transaction",
		ResourceID: transaction.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"ticker": c.Param("ticker"), "quantity": req.Quantity.String(), "price": req.Price.String()},
	})

	c.JSON(http.StatusCreated, gin.H{"transaction": newTransactionResponse(transaction)})
}

// ListTransactions returns an asset's transactions
// @Summary     List transactions for an asset
// @Description List transactions ordered by date, then creation
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path  string true  "Ticker"
// @Param       skip   query int    false "Rows to skip (default 0)"
// @Param       limit  query int    false "Rows to return (default 100, max 1000)"
// @Success     200 {array}  TransactionResponse "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker}/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	skip, limit, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Param("ticker"), skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, newTransactionResponse(&transactions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items})
}

// GetTransaction returns one transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionResponse(transaction)})
}

// UpdateTransaction corrects a transaction
// @Summary     Update a transaction
// @Description Correct the quantity, price or date of a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} TransactionResponse "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
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

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.TransactionUpdate{Quantity: req.Quantity, Price: req.Price}
	if req.TransactionDate != nil {
		date, err := parseDate(*req.TransactionDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		input.Date = &date
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditUpdateTransaction,
		Resource:   "transaction",
		ResourceID: transaction.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"quantity": req.Quantity, "price": req.Price, "transaction_date": req.TransactionDate},
	})

	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionResponse(transaction)})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
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

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditDeleteTransaction,
		Resource:   "transaction",
		ResourceID: id,
		IPAddress:  c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
