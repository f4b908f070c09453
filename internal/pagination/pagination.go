// Package pagination holds the two list shapes the API serves: page-numbered
// listings for assets and skip/limit windows for ledger entries.
package pagination

import (
	"math"

	"gorm.io/gorm"
)

// Bounds for skip/limit windows.
const (
	DefaultWindowLimit = 100
	MaxWindowLimit     = 1000
)

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a page of assets with totals.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

// Window is a skip/limit slice of an ordered ledger.
type Window struct {
	Skip  int
	Limit int
}

// NewWindow clamps skip and limit. A non-positive limit takes the default.
func NewWindow(skip, limit int) Window {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultWindowLimit
	}
	if limit > MaxWindowLimit {
		limit = MaxWindowLimit
	}
	return Window{Skip: skip, Limit: limit}
}

// Scope applies the window to a GORM query.
func (w Window) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(w.Skip).Limit(w.Limit)
}
