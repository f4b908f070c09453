package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"finagent/internal/analysis"
	"finagent/internal/logger"
	"finagent/internal/marketdata"
	"finagent/internal/models"
)

// analysisService loads an asset's ledger, looks up its current price and
// runs the analysis engine.
type analysisService struct {
	assetService       AssetServicer
	transactionService TransactionServicer
	dividendService    DividendServicer
	prices             marketdata.PriceSource
}

// NewAnalysisService creates a new AnalysisServicer.
func NewAnalysisService(
	assetService AssetServicer,
	transactionService TransactionServicer,
	dividendService DividendServicer,
	prices marketdata.PriceSource,
) AnalysisServicer {
	return &analysisService{
		assetService:       assetService,
		transactionService: transactionService,
		dividendService:    dividendService,
		prices:             prices,
	}
}

// AnalyzeAsset analyzes the asset with the given ticker.
func (s *analysisService) AnalyzeAsset(ctx context.Context, ticker string) (*analysis.Result, error) {
	asset, err := s.assetService.GetAssetByTicker(ticker)
	if err != nil {
		return nil, err
	}
	return s.analyze(ctx, asset)
}

// AnalyzePortfolio analyzes every asset, ordered by ticker.
func (s *analysisService) AnalyzePortfolio(ctx context.Context) ([]analysis.Result, error) {
	assets, err := s.assetService.ListAllAssets()
	if err != nil {
		return nil, err
	}

	results := make([]analysis.Result, 0, len(assets))
	for i := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := s.analyze(ctx, &assets[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (s *analysisService) analyze(ctx context.Context, asset *models.Asset) (*analysis.Result, error) {
	ledger, err := s.transactionService.LedgerForAsset(asset.ID)
	if err != nil {
		return nil, err
	}
	payments, err := s.dividendService.DividendsForAsset(asset.ID)
	if err != nil {
		return nil, err
	}

	txs := make([]analysis.Transaction, len(ledger))
	for i, t := range ledger {
		txs[i] = analysis.Transaction{Quantity: t.Quantity, Price: t.Price, Date: t.TransactionDate}
	}
	divs := make([]analysis.DividendPayment, len(payments))
	for i, d := range payments {
		divs[i] = analysis.DividendPayment{AmountPerShare: d.AmountPerShare, Date: d.PaymentDate}
	}

	res := analysis.Analyze(asset.Ticker, txs, divs, s.currentPrice(ctx, asset.Ticker))
	return &res, nil
}

// currentPrice returns nil when no price can be obtained. Lookup failures
// degrade the analysis instead of failing it.
func (s *analysisService) currentPrice(ctx context.Context, ticker string) *decimal.Decimal {
	if s.prices == nil {
		return nil
	}
	price, err := s.prices.CurrentPrice(ctx, ticker)
	if err != nil {
		if !errors.Is(err, marketdata.ErrPriceUnavailable) {
			logger.Named("analysis").Warnw("price lookup failed", "ticker", ticker, "error", err)
		}
		return nil
	}
	return &price
}
