package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/services"
)

// Built-in tool names.
const (
	ToolRegisterAssetPosition    = "register_asset_position"
	ToolListTransactions         = "list_transactions_for_ticker"
	ToolUpdateTransaction        = "update_transaction_by_id"
	ToolGetAssetAnalysis         = "get_asset_analysis"
	ToolGetFullPortfolioAnalysis = "get_full_portfolio_analysis"
)

// Toolbox builds the built-in tools on top of the domain services.
type Toolbox struct {
	Assets       services.AssetServicer
	Transactions services.TransactionServicer
	Analysis     services.AnalysisServicer
	// Now dates synthetic transactions. Defaults to time.Now.
	Now func() time.Time
}

// Tools returns every built-in tool.
func (b *Toolbox) Tools() []Tool {
	if b.Now == nil {
		b.Now = time.Now
	}
	return []Tool{
		b.registerAssetPosition(),
		b.listTransactions(),
		b.updateTransaction(),
		b.assetAnalysis(),
		b.portfolioAnalysis(),
	}
}

func (b *Toolbox) registerAssetPosition() Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{
			Name: ToolRegisterAssetPosition,
			Description: "Registers a user's complete position for a single asset. " +
				"Creates the asset if it does not exist, then records one synthetic buy " +
				"at the average price dated today. Call it once per asset in the request.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker":        {Type: genai.TypeString, Description: "Ticker symbol, for example 'PETR4.SA'."},
					"quantity":      {Type: genai.TypeString, Description: "Quantity currently held, as a decimal string."},
					"average_price": {Type: genai.TypeString, Description: "Average purchase price, as a decimal string."},
				},
				Required: []string{"ticker", "quantity", "average_price"},
			},
		},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			ticker, err := stringArg(args, "ticker")
			if err != nil {
				return nil, err
			}
			quantity, err := decimalArg(args, "quantity")
			if err != nil {
				return nil, err
			}
			price, err := decimalArg(args, "average_price")
			if err != nil {
				return nil, err
			}

			_, err = b.Assets.CreateAsset(services.AssetInput{Ticker: ticker, Name: ticker, AssetType: models.AssetTypeStock})
			if err != nil && !errors.Is(err, apperrors.ErrDuplicateAsset) {
				return nil, fmt.Errorf("creating asset %s: %w", ticker, err)
			}

			tx, err := b.Transactions.CreateTransaction(ticker, services.TransactionInput{
				Quantity: quantity,
				Price:    price,
				Date:     b.Now(),
			})
			if err != nil {
				return nil, fmt.Errorf("creating transaction for %s: %w", ticker, err)
			}

			return map[string]any{
				"status":         "success",
				"ticker":         services.NormalizeTicker(ticker),
				"transaction_id": tx.ID,
				"quantity":       quantity.String(),
				"average_price":  price.String(),
			}, nil
		},
	}
}

func (b *Toolbox) listTransactions() Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{
			Name:        ToolListTransactions,
			Description: "Lists every transaction recorded for an asset, oldest first, with ids usable for corrections.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {Type: genai.TypeString, Description: "Ticker symbol of the asset."},
				},
				Required: []string{"ticker"},
			},
		},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			ticker, err := stringArg(args, "ticker")
			if err != nil {
				return nil, err
			}
			txs, err := b.Transactions.ListTransactions(ticker, 0, services.MaxListLimit)
			if err != nil {
				return nil, err
			}
			items := make([]map[string]any, 0, len(txs))
			for _, tx := range txs {
				items = append(items, transactionMap(&tx))
			}
			return map[string]any{"ticker": services.NormalizeTicker(ticker), "transactions": items}, nil
		},
	}
}

func (b *Toolbox) updateTransaction() Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{
			Name:        ToolUpdateTransaction,
			Description: "Corrects the price of an existing transaction.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"transaction_id": {Type: genai.TypeString, Description: "Id of the transaction to correct."},
					"new_price":      {Type: genai.TypeString, Description: "Corrected unit price, as a decimal string."},
				},
				Required: []string{"transaction_id", "new_price"},
			},
		},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			id, err := stringArg(args, "transaction_id")
			if err != nil {
				return nil, err
			}
			price, err := decimalArg(args, "new_price")
			if err != nil {
				return nil, err
			}
			tx, err := b.Transactions.UpdateTransaction(id, services.TransactionUpdate{Price: &price})
			if err != nil {
				return nil, err
			}
			return transactionMap(tx), nil
		},
	}
}

func (b *Toolbox) assetAnalysis() Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{
			Name: ToolGetAssetAnalysis,
			Description: "Returns quantity, average price, amount invested, dividends received, " +
				"current market value and return for one asset.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {Type: genai.TypeString, Description: "Ticker symbol of the asset."},
				},
				Required: []string{"ticker"},
			},
		},
		fn: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			ticker, err := stringArg(args, "ticker")
			if err != nil {
				return nil, err
			}
			res, err := b.Analysis.AnalyzeAsset(ctx, ticker)
			if err != nil {
				return nil, err
			}
			return toMap(res.Report())
		},
	}
}

func (b *Toolbox) portfolioAnalysis() Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{
			Name:        ToolGetFullPortfolioAnalysis,
			Description: "Returns the analysis of every asset in the portfolio.",
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		},
		fn: func(ctx context.Context, _ map[string]any) (map[string]any, error) {
			results, err := b.Analysis.AnalyzePortfolio(ctx)
			if err != nil {
				return nil, err
			}
			analyses := make([]any, 0, len(results))
			for _, res := range results {
				m, err := toMap(res.Report())
				if err != nil {
					return nil, err
				}
				analyses = append(analyses, m)
			}
			return map[string]any{"analyses": analyses}, nil
		},
	}
}

func transactionMap(tx *models.Transaction) map[string]any {
	return map[string]any{
		"id":               tx.ID,
		"asset_id":         tx.AssetID,
		"quantity":         tx.Quantity.String(),
		"price":            tx.Price.String(),
		"transaction_date": tx.TransactionDate.Format(time.DateOnly),
	}
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("argument %q must not be empty", key)
		}
		return strings.TrimSpace(s), nil
	case float64:
		return decimal.NewFromFloat(s).String(), nil
	default:
		return "", fmt.Errorf("argument %q: expected string, got %T", key, v)
	}
}

// decimalArg accepts a decimal string or a JSON number.
func decimalArg(args map[string]any, key string) (decimal.Decimal, error) {
	v, ok := args[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("missing argument %q", key)
	}
	switch n := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, fmt.Errorf("argument %q: %w", key, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	default:
		return decimal.Zero, fmt.Errorf("argument %q: expected decimal, got %T", key, v)
	}
}
