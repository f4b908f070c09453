package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finagent/internal/analysis"
	"finagent/internal/models"
	"finagent/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// AssetInput holds the fields needed to create an asset.
type AssetInput struct {
	Ticker    string
	Name      string
	AssetType models.AssetType
	Sector    string
}

// AssetUpdate holds the optional fields of an asset update.
type AssetUpdate struct {
	Name      *string
	AssetType *models.AssetType
	Sector    *string
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(input AssetInput) (*models.Asset, error)
	GetAssetByTicker(ticker string) (*models.Asset, error)
	ListAssets(page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	ListAllAssets() ([]models.Asset, error)
	UpdateAsset(ticker string, input AssetUpdate) (*models.Asset, error)
	DeleteAsset(ticker string) error
}

// TransactionInput holds the fields of a new ledger transaction.
type TransactionInput struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

// TransactionUpdate holds the optional fields of a transaction correction.
type TransactionUpdate struct {
	Quantity *decimal.Decimal
	Price    *decimal.Decimal
	Date     *time.Time
}

// TransactionServicer defines the contract for ledger transactions.
type TransactionServicer interface {
	CreateTransaction(ticker string, input TransactionInput) (*models.Transaction, error)
	ListTransactions(ticker string, skip, limit int) ([]models.Transaction, error)
	GetTransaction(id string) (*models.Transaction, error)
	UpdateTransaction(id string, input TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id string) error
	LedgerForAsset(assetID string) ([]models.Transaction, error)
}

// DividendInput holds the fields of a new dividend payment.
type DividendInput struct {
	AmountPerShare decimal.Decimal
	Date           time.Time
}

// DividendUpdate holds the optional fields of a dividend correction.
type DividendUpdate struct {
	AmountPerShare *decimal.Decimal
	Date           *time.Time
}

// DividendServicer defines the contract for dividend payments.
type DividendServicer interface {
	CreateDividend(ticker string, input DividendInput) (*models.Dividend, error)
	ListDividends(ticker string, skip, limit int) ([]models.Dividend, error)
	GetDividend(id string) (*models.Dividend, error)
	UpdateDividend(id string, input DividendUpdate) (*models.Dividend, error)
	DeleteDividend(id string) error
	DividendsForAsset(assetID string) ([]models.Dividend, error)
}

// AnalysisServicer defines the contract for portfolio analytics.
type AnalysisServicer interface {
	AnalyzeAsset(ctx context.Context, ticker string) (*analysis.Result, error)
	AnalyzePortfolio(ctx context.Context) ([]analysis.Result, error)
}

// AgentActionInput holds a completed agent exchange to record.
type AgentActionInput struct {
	AgentName string
	Question  string
	ToolCalls string
	Response  string
}

// AgentActionServicer defines the contract for the agent action log.
type AgentActionServicer interface {
	CreateAction(userID string, input AgentActionInput) (*models.AgentAction, error)
	ListActions(userID string, limit int) ([]models.AgentAction, error)
}

// AuditServicer records ledger and account mutations.
type AuditServicer interface {
	Record(event AuditEvent)
}
