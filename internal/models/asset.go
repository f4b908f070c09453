package models

// AssetType represents the category of an instrument.
type AssetType string

const (
	AssetTypeStock AssetType = "stock"
	AssetTypeREIT  AssetType = "reit"
	AssetTypeETF   AssetType = "etf"
)

// Asset is an instrument identified by its ticker. It owns the ledger of
// transactions and dividend payments.
type Asset struct {
	Base
	Ticker       string        `gorm:"not null;uniqueIndex" json:"ticker"`
	Name         string        `gorm:"not null" json:"name"`
	AssetType    AssetType     `gorm:"not null" json:"asset_type"`
	Sector       string        `json:"sector,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:AssetID" json:"-"`
	Dividends    []Dividend    `gorm:"foreignKey:AssetID" json:"-"`
}
