package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dividend is a per-share cash distribution paid by an asset.
type Dividend struct {
	Base
	AssetID        string          `gorm:"type:uuid;not null;index" json:"asset_id"`
	AmountPerShare decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"amount_per_share"`
	PaymentDate    time.Time       `gorm:"type:date;not null" json:"payment_date"`
}
