package models

import (
	"time"

	"gorm.io/gorm"

	"finagent/internal/uuid"
)

// Base holds the key and timestamps shared by every table. Rows embedding only
// Base are deleted outright, which keeps ledger sums exact and lets a deleted
// ticker be registered again.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUIDv7, so ID order follows insertion order.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// SoftDelete keeps a deleted row in place and hides it from queries.
type SoftDelete struct {
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
