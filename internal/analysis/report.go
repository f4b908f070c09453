package analysis

import "github.com/shopspring/decimal"

// Report is the wire form of a Result. Computed money values carry two
// decimals. The quantity and the quoted market price keep their exact value.
// Absent values are null.
type Report struct {
	Ticker                 string  `json:"ticker" example:"ITSA4.SA"`
	TotalQuantity          string  `json:"total_quantity" example:"150"`
	AveragePrice           string  `json:"average_price" example:"10.67"`
	TotalInvested          string  `json:"total_invested" example:"1600.50"`
	TotalDividendsReceived string  `json:"total_dividends_received" example:"75.00"`
	CurrentMarketPrice     *string `json:"current_market_price" example:"15.1234"`
	CurrentMarketValue     *string `json:"current_market_value" example:"2250.00"`
	FinancialReturnValue   *string `json:"financial_return_value" example:"649.50"`
	FinancialReturnPercent *string `json:"financial_return_percent" example:"40.58"`
}

// Report renders the result for serialization.
func (r Result) Report() Report {
	return Report{
		Ticker:                 r.Ticker,
		TotalQuantity:          r.TotalQuantity.String(),
		AveragePrice:           r.AverageCost.StringFixed(moneyPlaces),
		TotalInvested:          r.TotalInvested.StringFixed(moneyPlaces),
		TotalDividendsReceived: r.TotalDividends.StringFixed(moneyPlaces),
		CurrentMarketPrice:     exact(r.CurrentMarketPrice),
		CurrentMarketValue:     fixed(r.CurrentMarketValue),
		FinancialReturnValue:   fixed(r.FinancialReturnValue),
		FinancialReturnPercent: fixed(r.FinancialReturnPercent),
	}
}

func fixed(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(moneyPlaces)
	return &s
}

func exact(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
