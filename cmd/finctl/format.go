package main

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney renders amount in the currency's display format. Unknown codes
// fall back to the plain decimal.
func formatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.String()
	}
	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), cur.Code).Display()
}

// formatAmount formats a decimal string from a report.
func formatAmount(s, currency string) string {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return formatMoney(d, currency)
}

func formatOptional(s *string, currency string) string {
	if s == nil {
		return "-"
	}
	return formatAmount(*s, currency)
}

func formatPercent(s *string) string {
	if s == nil {
		return "-"
	}
	return *s + "%"
}
