// Package analysis computes position size, cost basis, dividend income and
// unrealized return for a single asset from its ledger.
//
// All arithmetic is exact decimal. Every value that comes out of a division or
// a multiplication by a price is rounded once to two places, half away from
// zero. Later steps reuse those rounded intermediates, so compounding of the
// rounding is part of the contract.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of fractional digits kept for money and percentages.
const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Transaction is one ledger entry. Positive quantities are acquisitions,
// negative ones are disposals.
type Transaction struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

// DividendPayment is a per-share cash distribution.
type DividendPayment struct {
	AmountPerShare decimal.Decimal
	Date           time.Time
}

// Result holds the metrics for one asset at one current price.
// Price dependent fields are nil when no price was supplied, and the return
// fields are also nil when nothing is invested.
type Result struct {
	Ticker         string
	TotalQuantity  decimal.Decimal
	AverageCost    decimal.Decimal
	TotalInvested  decimal.Decimal
	TotalDividends decimal.Decimal

	CurrentMarketPrice     *decimal.Decimal
	CurrentMarketValue     *decimal.Decimal
	FinancialReturnValue   *decimal.Decimal
	FinancialReturnPercent *decimal.Decimal
}

// HasReturn reports whether the return fields are populated.
func (r Result) HasReturn() bool {
	return r.FinancialReturnValue != nil && r.FinancialReturnPercent != nil
}

// Analyze derives the metrics for an asset from its transactions, dividends
// and an optional current price. It has no side effects and never fails;
// the order of the input slices does not affect the result.
//
// The average cost only looks at acquisitions, so disposals shrink the
// position without touching the cost basis. Dividends are valued against the
// current position for every payment, not the position held on the payment
// date.
func Analyze(ticker string, transactions []Transaction, dividends []DividendPayment, currentPrice *decimal.Decimal) Result {
	res := Result{
		Ticker:         ticker,
		TotalQuantity:  decimal.Zero,
		AverageCost:    decimal.Zero,
		TotalInvested:  decimal.Zero,
		TotalDividends: decimal.Zero,
	}

	totalCost := decimal.Zero
	totalBought := decimal.Zero
	for _, tx := range transactions {
		res.TotalQuantity = res.TotalQuantity.Add(tx.Quantity)
		if tx.Quantity.IsPositive() {
			totalCost = totalCost.Add(tx.Quantity.Mul(tx.Price))
			totalBought = totalBought.Add(tx.Quantity)
		}
	}

	if totalBought.IsPositive() {
		res.AverageCost = totalCost.DivRound(totalBought, moneyPlaces)
	}

	// Net short or flat positions report nothing invested.
	if res.TotalQuantity.IsPositive() {
		res.TotalInvested = res.TotalQuantity.Mul(res.AverageCost).Round(moneyPlaces)
	}

	perShare := decimal.Zero
	for _, d := range dividends {
		perShare = perShare.Add(d.AmountPerShare)
	}
	res.TotalDividends = perShare.Mul(res.TotalQuantity).Round(moneyPlaces)

	if currentPrice == nil {
		return res
	}

	price := *currentPrice
	value := res.TotalQuantity.Mul(price).Round(moneyPlaces)
	res.CurrentMarketPrice = &price
	res.CurrentMarketValue = &value

	if res.TotalInvested.IsPositive() {
		ret := value.Sub(res.TotalInvested)
		pct := ret.Mul(hundred).DivRound(res.TotalInvested, moneyPlaces)
		res.FinancialReturnValue = &ret
		res.FinancialReturnPercent = &pct
	}

	return res
}
