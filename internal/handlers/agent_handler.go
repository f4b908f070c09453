package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"finagent/internal/agent"
	apperrors "finagent/internal/errors"
	"finagent/internal/logger"
	"finagent/internal/services"
)

// AgentRunner runs natural-language queries against the configured agents.
type AgentRunner interface {
	Invoke(ctx context.Context, agentName, question string) (*agent.Answer, error)
	Route(ctx context.Context, question string) (*agent.Routed, error)
}

// AgentHandler handles agent query requests.
type AgentHandler struct {
	runner        AgentRunner
	actionService services.AgentActionServicer
}

// NewAgentHandler creates a new AgentHandler. A nil runner makes every query
// answer 503.
func NewAgentHandler(runner AgentRunner, actionService services.AgentActionServicer) *AgentHandler {
	return &AgentHandler{runner: runner, actionService: actionService}
}

// AgentQueryRequest represents a natural-language question
type AgentQueryRequest struct {
	Question string `json:"question" binding:"required" example:"Register 20 ITSA4 shares at 10.50"`
}

// AgentQueryResponse represents an agent's answer
type AgentQueryResponse struct {
	Answer string `json:"answer"`
}

// RoutedQueryResponse represents the answer of the agent chosen by the router
type RoutedQueryResponse struct {
	Agent  string `json:"agent" example:"registration_agent"`
	Answer string `json:"answer"`
}

// routedToolCalls is the tool call record stored with a routed query.
type routedToolCalls struct {
	Decision  *agent.RouteDecision `json:"decision"`
	ToolCalls []agent.ToolCall     `json:"tool_calls"`
}

// QueryAgent sends a question to a named agent
// @Summary     Query an agent
// @Description Ask a question to the named agent, which may call portfolio tools to answer
// @Tags        agents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       agent_name path string            true "Agent name"
// @Param       request    body AgentQueryRequest true "Question"
// @Success     200 {object} AgentQueryResponse "Answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Agent not found"
// @Failure     500 {object} ErrorResponse "Agent failed"
// @Failure     503 {object} ErrorResponse "Agents not configured"
// @Router      /agent/query/{agent_name} [post]
func (h *AgentHandler) QueryAgent(c *gin.Context) {
	if h.runner == nil {
		respondWithError(c, apperrors.ErrAgentUnavailable)
		return
	}

	var req AgentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	name := c.Param("agent_name")
	answer, err := h.runner.Invoke(c.Request.Context(), name, req.Question)
	if err != nil {
		respondWithError(c, agentError(name, err))
		return
	}
	c.JSON(http.StatusOK, AgentQueryResponse{Answer: answer.Text})
}

// QueryRouter lets the router agent pick who answers
// @Summary     Query through the router
// @Description The router agent chooses the best agent for the question; the exchange is recorded in the agent action log
// @Tags        agents
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AgentQueryRequest true "Question"
// @Success     200 {object} RoutedQueryResponse "Answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Agent failed"
// @Failure     503 {object} ErrorResponse "Agents not configured"
// @Router      /agent/query/router [post]
func (h *AgentHandler) QueryRouter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if h.runner == nil {
		respondWithError(c, apperrors.ErrAgentUnavailable)
		return
	}

	var req AgentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	routed, err := h.runner.Route(c.Request.Context(), req.Question)
	if err != nil {
		respondWithError(c, agentError(agent.RouterAgent, err))
		return
	}

	h.recordAction(userID, req.Question, routed)

	c.JSON(http.StatusOK, RoutedQueryResponse{Agent: routed.Agent, Answer: routed.Answer.Text})
}

// recordAction stores the routed exchange. A failure is logged, the answer
// is still returned.
func (h *AgentHandler) recordAction(userID, question string, routed *agent.Routed) {
	toolCalls, err := json.Marshal(routedToolCalls{Decision: routed.Decision, ToolCalls: routed.Answer.ToolCalls})
	if err != nil {
		logger.Get().Errorw("failed to encode tool calls", "agent", routed.Agent, "error", err)
		toolCalls = nil
	}

	_, err = h.actionService.CreateAction(userID, services.AgentActionInput{
		AgentName: routed.Agent,
		Question:  question,
		ToolCalls: string(toolCalls),
		Response:  routed.Answer.Text,
	})
	if err != nil {
		logger.Get().Errorw("failed to record agent action", "agent", routed.Agent, "user_id", userID, "error", err)
	}
}

func agentError(name string, err error) error {
	switch {
	case errors.Is(err, agent.ErrAgentNotFound):
		return apperrors.WithMessage(apperrors.ErrAgentNotFound, fmt.Sprintf("Agent '%s' not found.", name))
	case errors.Is(err, agent.ErrModelUnavailable), errors.Is(err, agent.ErrUnsupportedProvider):
		return apperrors.Wrap(apperrors.ErrAgentUnavailable, err)
	default:
		return apperrors.Wrap(apperrors.ErrAgentFailed, err)
	}
}
