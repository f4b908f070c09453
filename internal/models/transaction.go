package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry for an asset. Positive quantities are
// buys, negative quantities are sells.
type Transaction struct {
	Base
	AssetID         string          `gorm:"type:uuid;not null;index" json:"asset_id"`
	Quantity        decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"price"`
	TransactionDate time.Time       `gorm:"type:date;not null" json:"transaction_date"`
}
