package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/pagination"
)

// dividendService handles dividend payments.
type dividendService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewDividendService creates a new DividendServicer.
func NewDividendService(db *gorm.DB, assetService AssetServicer) DividendServicer {
	return &dividendService{db: db, assetService: assetService}
}

// CreateDividend records a per-share payment for the asset with the given ticker.
func (s *dividendService) CreateDividend(ticker string, input DividendInput) (*models.Dividend, error) {
	if input.AmountPerShare.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount per share must not be negative")
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Payment date is required")
	}

	asset, err := s.assetService.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}

	dividend := &models.Dividend{
		AssetID:        asset.ID,
		AmountPerShare: input.AmountPerShare,
		PaymentDate:    truncateDate(input.Date),
	}
	if err := s.db.Create(dividend).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return dividend, nil
}

// ListDividends returns a window of an asset's dividends ordered by payment date.
func (s *dividendService) ListDividends(ticker string, skip, limit int) ([]models.Dividend, error) {
	asset, err := s.assetService.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}
	window := pagination.NewWindow(skip, limit)

	var dividends []models.Dividend
	if err := s.db.Where("asset_id = ?", asset.ID).
		Order("payment_date ASC, created_at ASC, id ASC").
		Scopes(window.Scope).
		Find(&dividends).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return dividends, nil
}

// GetDividend retrieves a dividend by ID.
func (s *dividendService) GetDividend(id string) (*models.Dividend, error) {
	var dividend models.Dividend
	if err := s.db.Where("id = ?", id).First(&dividend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDividendNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &dividend, nil
}

// UpdateDividend corrects the amount or date of a dividend.
func (s *dividendService) UpdateDividend(id string, input DividendUpdate) (*models.Dividend, error) {
	dividend, err := s.GetDividend(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.AmountPerShare != nil {
		if input.AmountPerShare.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount per share must not be negative")
		}
		updates["amount_per_share"] = *input.AmountPerShare
	}
	if input.Date != nil {
		updates["payment_date"] = truncateDate(*input.Date)
	}
	if len(updates) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Nothing to update")
	}

	if err := s.db.Model(dividend).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetDividend(id)
}

// DeleteDividend removes a dividend payment.
func (s *dividendService) DeleteDividend(id string) error {
	dividend, err := s.GetDividend(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(dividend).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DividendsForAsset returns every dividend of an asset.
func (s *dividendService) DividendsForAsset(assetID string) ([]models.Dividend, error) {
	var dividends []models.Dividend
	if err := s.db.Where("asset_id = ?", assetID).
		Order("payment_date ASC, created_at ASC, id ASC").
		Find(&dividends).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return dividends, nil
}

// truncateDate drops the time of day, keeping the calendar date in UTC.
func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
