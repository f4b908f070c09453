package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/pagination"
)

// Bounds for list queries.
const (
	DefaultListLimit = pagination.DefaultWindowLimit
	MaxListLimit     = pagination.MaxWindowLimit
)

// transactionService handles ledger transactions.
type transactionService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, assetService AssetServicer) TransactionServicer {
	return &transactionService{db: db, assetService: assetService}
}

// CreateTransaction records a buy (positive quantity) or sell (negative
// quantity) for the asset with the given ticker.
func (s *transactionService) CreateTransaction(ticker string, input TransactionInput) (*models.Transaction, error) {
	if input.Price.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Price must not be negative")
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Transaction date is required")
	}

	asset, err := s.assetService.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		AssetID:         asset.ID,
		Quantity:        input.Quantity,
		Price:           input.Price,
		TransactionDate: truncateDate(input.Date),
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// ListTransactions returns a window of an asset's transactions in ledger order.
func (s *transactionService) ListTransactions(ticker string, skip, limit int) ([]models.Transaction, error) {
	asset, err := s.assetService.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}
	window := pagination.NewWindow(skip, limit)

	var transactions []models.Transaction
	if err := s.db.Where("asset_id = ?", asset.ID).
		Order("transaction_date ASC, created_at ASC, id ASC").
		Scopes(window.Scope).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *transactionService) GetTransaction(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction corrects the quantity, price or date of a transaction.
func (s *transactionService) UpdateTransaction(id string, input TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Price must not be negative")
		}
		updates["price"] = *input.Price
	}
	if input.Date != nil {
		updates["transaction_date"] = truncateDate(*input.Date)
	}
	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Nothing to update")
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetTransaction(id)
}

// DeleteTransaction removes a transaction from the ledger.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransaction(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// LedgerForAsset returns every transaction of an asset in ledger order.
func (s *transactionService) LedgerForAsset(assetID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("asset_id = ?", assetID).
		Order("transaction_date ASC, created_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
