package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finagent/internal/errors"
	"finagent/internal/models"
	"finagent/internal/services"
)

const defaultAgentActionLimit = 100

// AgentActionHandler handles the agent action log.
type AgentActionHandler struct {
	actionService services.AgentActionServicer
}

// NewAgentActionHandler creates a new AgentActionHandler.
func NewAgentActionHandler(actionService services.AgentActionServicer) *AgentActionHandler {
	return &AgentActionHandler{actionService: actionService}
}

// CreateAgentActionRequest represents an agent exchange to record
type CreateAgentActionRequest struct {
	AgentName string          `json:"agent_name" binding:"required" example:"registration_agent"`
	Question  string          `json:"question" binding:"required" example:"Register 10 shares of ITUB4"`
	ToolCalls json.RawMessage `json:"tool_calls" swaggertype:"object"`
	Response  string          `json:"response" example:"Registered"`
}

// AgentActionResponse represents a recorded agent exchange
type AgentActionResponse struct {
	ID        string          `json:"id"`
	AgentName string          `json:"agent_name"`
	Question  string          `json:"question"`
	ToolCalls json.RawMessage `json:"tool_calls" swaggertype:"object"`
	Response  string          `json:"response"`
	CreatedAt time.Time       `json:"created_at"`
}

func newAgentActionResponse(a *models.AgentAction) AgentActionResponse {
	resp := AgentActionResponse{
		ID:        a.ID,
		AgentName: a.AgentName,
		Question:  a.Question,
		Response:  a.Response,
		CreatedAt: a.CreatedAt,
	}
	if a.ToolCalls != "" && json.Valid([]byte(a.ToolCalls)) {
		resp.ToolCalls = json.RawMessage(a.ToolCalls)
	}
	return resp
}

// CreateAgentAction records an agent exchange
// @Summary     Record an agent action
// @Tags        agent-actions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAgentActionRequest true "Agent exchange"
// @Success     201 {object} AgentActionResponse "Action recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agent-actions [post]
func (h *AgentActionHandler) CreateAgentAction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAgentActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var toolCalls string
	if len(req.ToolCalls) > 0 && string(req.ToolCalls) != "null" {
		toolCalls = string(req.ToolCalls)
	}

	action, err := h.actionService.CreateAction(userID, services.AgentActionInput{
		AgentName: req.AgentName,
		Question:  req.Question,
		ToolCalls: toolCalls,
		Response:  req.Response,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agent_action": newAgentActionResponse(action)})
}

// ListAgentActions returns the caller's recent agent exchanges
// @Summary     List agent actions
// @Description Most recent first
// @Tags        agent-actions
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Entries to return (default 100, max 500)"
// @Success     200 {array}  AgentActionResponse "Actions"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /agent-actions [get]
func (h *AgentActionHandler) ListAgentActions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit, err := queryInt(c, "limit", defaultAgentActionLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	actions, err := h.actionService.ListActions(userID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	items := make([]AgentActionResponse, 0, len(actions))
	for i := range actions {
		items = append(items, newAgentActionResponse(&actions[i]))
	}
	c.JSON(http.StatusOK, gin.H{"agent_actions": items})
}
