package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/pagination"
	"finagent/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// CreateAssetRequest represents the request payload for creating an asset
type CreateAssetRequest struct {
	Ticker    string `json:"ticker" binding:"required,ticker" example:"ITSA4.SA"`
	Name      string `json:"name" binding:"max=255" example:"Itausa"`
	AssetType string `json:"asset_type" binding:"omitempty,asset_type" example:"stock"`
	Sector    string `json:"sector" binding:"max=100" example:"Financials"`
}

// UpdateAssetRequest represents the request payload for updating an asset
type UpdateAssetRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	AssetType *string `json:"asset_type" binding:"omitempty,asset_type"`
	Sector    *string `json:"sector" binding:"omitempty,max=100"`
}

// AssetResponse represents an asset in the response
type AssetResponse struct {
	ID        string           `json:"id"`
	Ticker    string           `json:"ticker"`
	Name      string           `json:"name"`
	AssetType models.AssetType `json:"asset_type"`
	Sector    string           `json:"sector"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func newAssetResponse(a *models.Asset) AssetResponse {
	return AssetResponse{
		ID:        a.ID,
		Ticker:    a.Ticker,
		Name:      a.Name,
		AssetType: a.AssetType,
		Sector:    a.Sector,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateAsset handles the creation of a new asset
// @Summary     Create an asset
// @Description Register a new asset. Tickers are stored upper-cased and must be unique.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} AssetResponse "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate ticker"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(services.AssetInput{
		Ticker:    req.Ticker,
		Name:      req.Name,
		AssetType: models.AssetType(strings.ToLower(req.AssetType)),
		Sector:    req.Sector,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditCreateAsset,
		Resource:   "asset",
		ResourceID: asset.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"ticker": asset.Ticker, "asset_type": asset.AssetType},
	})

	c.JSON(http.StatusCreated, gin.H{"asset": newAssetResponse(asset)})
}

// ListAssets returns a page of assets
// @Summary     List assets
// @Description List assets ordered by ticker
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[handlers.AssetResponse] "Assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.ListAssets(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]AssetResponse, 0, len(result.Data))
	for i := range result.Data {
		items = append(items, newAssetResponse(&result.Data[i]))
	}
	c.JSON(http.StatusOK, pagination.NewPageResponse(items, result.Page, result.PageSize, result.TotalItems))
}

// GetAsset returns one asset
// @Summary     Get an asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Ticker"
// @Success     200 {object} AssetResponse "Asset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByTicker(c.Param("ticker"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"asset": newAssetResponse(asset)})
}

// UpdateAsset updates the descriptive fields of an asset
// @Summary     Update an asset
// @Description Update name, type or sector. The ticker cannot change.
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker  path string             true "Ticker"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} AssetResponse "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.AssetUpdate{Name: req.Name, Sector: req.Sector}
	if req.AssetType != nil {
		t := models.AssetType(strings.ToLower(*req.AssetType))
		input.AssetType = &t
	}

	asset, err := h.assetService.UpdateAsset(c.Param("ticker"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditUpdateAsset,
		Resource:   "asset",
		ResourceID: asset.ID,
		IPAddress:  c.ClientIP(),
		Changes:    map[string]interface{}{"name": req.Name, "asset_type": req.AssetType, "sector": req.Sector},
	})

	c.JSON(http.StatusOK, gin.H{"asset": newAssetResponse(asset)})
}

// DeleteAsset removes an asset and its ledger
// @Summary     Delete an asset
// @Description Delete an asset together with its transactions and dividends
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Ticker"
// @Success     200 {object} map[string]string "Asset deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ticker := services.NormalizeTicker(c.Param("ticker"))
	if err := h.assetService.DeleteAsset(ticker); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(services.AuditEvent{
		UserID:     userID,
		Action:     models.AuditDeleteAsset,
		Resource:   "asset",
		ResourceID: ticker,
		IPAddress:  c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
