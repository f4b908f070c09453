package marketdata

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Cache defaults.
const (
	DefaultMaxAge     = 15 * time.Minute
	DefaultMaxEntries = 1024
)

type cachedPrice struct {
	price     decimal.Decimal
	fetchedAt time.Time
}

// CachedSource memoizes prices from an underlying source for MaxAge.
// Failed lookups are not cached.
type CachedSource struct {
	source     PriceSource
	maxAge     time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]cachedPrice
}

// CacheOption configures a CachedSource.
type CacheOption func(*CachedSource)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CachedSource) { c.now = now }
}

// NewCachedSource wraps source. Non-positive maxAge or maxEntries select
// the defaults.
func NewCachedSource(source PriceSource, maxAge time.Duration, maxEntries int, opts ...CacheOption) *CachedSource {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	c := &CachedSource{
		source:     source,
		maxAge:     maxAge,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]cachedPrice),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentPrice implements PriceSource.
func (c *CachedSource) CurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	key := strings.ToUpper(strings.TrimSpace(ticker))

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetchedAt) < c.maxAge {
		return entry.price, nil
	}

	price, err := c.source.CurrentPrice(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		if c.purgeExpired() == 0 {
			c.evictOldest()
		}
	}
	c.entries[key] = cachedPrice{price: price, fetchedAt: c.now()}
	return price, nil
}

// Len returns the number of cached prices.
func (c *CachedSource) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops expired prices and reports how many were removed.
func (c *CachedSource) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.purgeExpired()
}

// purgeExpired must be called with mu held.
func (c *CachedSource) purgeExpired() int {
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.maxAge {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// evictOldest must be called with mu held.
func (c *CachedSource) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.fetchedAt.Before(oldest) {
			oldestKey, oldest = k, e.fetchedAt
		}
	}
	delete(c.entries, oldestKey)
}
