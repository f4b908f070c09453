package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
)

// MaxAgentActionLimit caps how many actions a single listing returns.
const MaxAgentActionLimit = 500

// agentActionService records agent exchanges per user.
type agentActionService struct {
	db *gorm.DB
}

// NewAgentActionService creates a new AgentActionServicer.
func NewAgentActionService(db *gorm.DB) AgentActionServicer {
	return &agentActionService{db: db}
}

// CreateAction stores one agent exchange for a user.
func (s *agentActionService) CreateAction(userID string, input AgentActionInput) (*models.AgentAction, error) {
	if strings.TrimSpace(input.AgentName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Agent name is required")
	}
	if strings.TrimSpace(input.Question) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Question is required")
	}

	action := &models.AgentAction{
		UserID:    userID,
		AgentName: input.AgentName,
		Question:  input.Question,
		ToolCalls: input.ToolCalls,
		Response:  input.Response,
	}
	if err := s.db.Create(action).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return action, nil
}

// ListActions returns a user's most recent actions, newest first.
func (s *agentActionService) ListActions(userID string, limit int) ([]models.AgentAction, error) {
	if limit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be positive")
	}
	if limit > MaxAgentActionLimit {
		limit = MaxAgentActionLimit
	}

	var actions []models.AgentAction
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&actions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return actions, nil
}
