package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/pagination"
)

// assetService handles asset-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// CreateAsset creates a new asset. Tickers are unique.
func (s *assetService) CreateAsset(input AssetInput) (*models.Asset, error) {
	ticker := NormalizeTicker(input.Ticker)
	if ticker == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = ticker
	}
	assetType := input.AssetType
	if assetType == "" {
		assetType = models.AssetTypeStock
	}

	var count int64
	if err := s.db.Model(&models.Asset{}).Where("ticker = ?", ticker).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateAsset
	}

	asset := &models.Asset{
		Ticker:    ticker,
		Name:      name,
		AssetType: assetType,
		Sector:    strings.TrimSpace(input.Sector),
	}
	if err := s.db.Create(asset).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateAsset
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// GetAssetByTicker returns the asset with the given ticker.
func (s *assetService) GetAssetByTicker(ticker string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("ticker = ?", NormalizeTicker(ticker)).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// ListAssets returns a paginated list of assets ordered by ticker.
func (s *assetService) ListAssets(page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Asset{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets []models.Asset
	if err := base.Order("ticker ASC").Scopes(pagination.Paginate(page)).Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(assets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAllAssets returns every asset ordered by ticker.
func (s *assetService) ListAllAssets() ([]models.Asset, error) {
	var assets []models.Asset
	if err := s.db.Order("ticker ASC").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return assets, nil
}

// UpdateAsset applies the non-nil fields of input to the asset.
func (s *assetService) UpdateAsset(ticker string, input AssetUpdate) (*models.Asset, error) {
	asset, err := s.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must not be empty")
		}
		updates["name"] = name
	}
	if input.AssetType != nil {
		updates["asset_type"] = *input.AssetType
	}
	if input.Sector != nil {
		updates["sector"] = strings.TrimSpace(*input.Sector)
	}
	if len(updates) == 0 {
		return asset, nil
	}

	if err := s.db.Model(asset).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetAssetByTicker(asset.Ticker)
}

// DeleteAsset removes an asset together with its ledger in one transaction.
func (s *assetService) DeleteAsset(ticker string) error {
	asset, err := s.GetAssetByTicker(ticker)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&models.Dividend{}).Error; err != nil {
			return err
		}
		return tx.Delete(asset).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
