package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finagent/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date parses a YYYY-MM-DD date and fails the test on bad input.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAsset creates a stock with a unique ticker.
func CreateTestAsset(t *testing.T, db *gorm.DB) *models.Asset {
	t.Helper()
	return CreateTestAssetWithTicker(t, db, fmt.Sprintf("TST%d", nextID()))
}

// CreateTestAssetWithTicker creates a stock with the given ticker.
func CreateTestAssetWithTicker(t *testing.T, db *gorm.DB, ticker string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		Ticker:    ticker,
		Name:      "Test Asset " + ticker,
		AssetType: models.AssetTypeStock,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTransaction records a ledger transaction. Quantity and price are
// decimal strings.
func CreateTestTransaction(t *testing.T, db *gorm.DB, assetID, quantity, price, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		AssetID:         assetID,
		Quantity:        decimal.RequireFromString(quantity),
		Price:           decimal.RequireFromString(price),
		TransactionDate: Date(t, date),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestDividend records a dividend payment.
func CreateTestDividend(t *testing.T, db *gorm.DB, assetID, amountPerShare, date string) *models.Dividend {
	t.Helper()

	div := &models.Dividend{
		AssetID:        assetID,
		AmountPerShare: decimal.RequireFromString(amountPerShare),
		PaymentDate:    Date(t, date),
	}
	if err := db.Create(div).Error; err != nil {
		t.Fatalf("failed to create test dividend: %v", err)
	}
	return div
}

// CreateTestAgentAction records an agent exchange for a user.
func CreateTestAgentAction(t *testing.T, db *gorm.DB, userID, agentName string) *models.AgentAction {
	t.Helper()

	action := &models.AgentAction{
		UserID:    userID,
		AgentName: agentName,
		Question:  fmt.Sprintf("question %d", nextID()),
		ToolCalls: "[]",
		Response:  "ok",
	}
	if err := db.Create(action).Error; err != nil {
		t.Fatalf("failed to create test agent action: %v", err)
	}
	return action
}
