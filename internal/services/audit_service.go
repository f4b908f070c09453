package services

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"finagent/internal/logger"
	"finagent/internal/models"
)

// AuditEvent describes one mutation to record. Changes is stored as JSON.
type AuditEvent struct {
	UserID     string
	Action     models.AuditAction
	Resource   string
	ResourceID string
	IPAddress  string
	Changes    map[string]any
}

type auditService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db, log: logger.Named("audit")}
}

// Record stores event. The request that caused it has already succeeded, so
// failures are logged and swallowed.
func (s *auditService) Record(event AuditEvent) {
	entry := &models.AuditLog{
		UserID:       event.UserID,
		Action:       event.Action,
		ResourceType: event.Resource,
		ResourceID:   event.ResourceID,
		IPAddress:    event.IPAddress,
	}
	if len(event.Changes) > 0 {
		data, err := json.Marshal(event.Changes)
		if err != nil {
			s.log.Warnw("dropping unencodable audit changes", "action", event.Action, "error", err)
		} else {
			entry.Changes = string(data)
		}
	}

	if err := s.db.Create(entry).Error; err != nil {
		s.log.Errorw("failed to record audit event",
			"error", err,
			"user_id", event.UserID,
			"action", event.Action,
			"resource", event.Resource,
			"resource_id", event.ResourceID,
		)
	}
}
