package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finagent/internal/analysis"
	"finagent/internal/services"
)

// AnalysisHandler serves portfolio analytics.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// PortfolioAnalysisResponse wraps the per-asset analyses of the portfolio.
type PortfolioAnalysisResponse struct {
	Analyses []analysis.Report `json:"analyses"`
}

// GetAssetAnalysis analyzes one asset
// @Summary     Analyze an asset
// @Description Average price, invested amount, dividends and, when a market price is available, the current value and return
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Ticker"
// @Success     200 {object} analysis.Report "Analysis"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{ticker}/analysis [get]
func (h *AnalysisHandler) GetAssetAnalysis(c *gin.Context) {
	result, err := h.analysisService.AnalyzeAsset(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Report())
}

// GetPortfolioAnalysis analyzes every asset
// @Summary     Analyze the portfolio
// @Description Per-asset analysis for every registered asset, ordered by ticker
// @Tags        analysis
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} PortfolioAnalysisResponse "Analyses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/analysis [get]
func (h *AnalysisHandler) GetPortfolioAnalysis(c *gin.Context) {
	results, err := h.analysisService.AnalyzePortfolio(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	reports := make([]analysis.Report, 0, len(results))
	for _, r := range results {
		reports = append(reports, r.Report())
	}
	c.JSON(http.StatusOK, PortfolioAnalysisResponse{Analyses: reports})
}
