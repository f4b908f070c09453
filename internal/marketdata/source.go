// Package marketdata provides current market prices for tickers.
package marketdata

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrPriceUnavailable is returned when no price exists for a ticker.
var ErrPriceUnavailable = errors.New("price unavailable")

// PriceSource returns the current market price of a ticker.
type PriceSource interface {
	CurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, error)
}

// StaticSource serves prices from a fixed table. Unknown tickers yield
// ErrPriceUnavailable.
type StaticSource struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

// NewStaticSource creates a StaticSource seeded with prices.
func NewStaticSource(prices map[string]decimal.Decimal) *StaticSource {
	s := &StaticSource{prices: make(map[string]decimal.Decimal, len(prices))}
	for ticker, price := range prices {
		s.prices[strings.ToUpper(ticker)] = price
	}
	return s
}

// Set stores the price of a ticker.
func (s *StaticSource) Set(ticker string, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[strings.ToUpper(ticker)] = price
}

// CurrentPrice implements PriceSource.
func (s *StaticSource) CurrentPrice(_ context.Context, ticker string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.prices[strings.ToUpper(ticker)]
	if !ok {
		return decimal.Zero, ErrPriceUnavailable
	}
	return price, nil
}
