package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finagent/internal/logger"
)

// Agent names with special meaning to the orchestrator.
const (
	RouterAgent   = "router_agent"
	FallbackAgent = "analysis_agent"
)

// RouteDecision is the router agent's structured output.
type RouteDecision struct {
	AgentName  string  `json:"agent_name"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Routed is the outcome of a routed query.
type Routed struct {
	Agent    string
	Decision *RouteDecision
	Answer   *Answer
}

// Orchestrator loads agent configs and runs them.
type Orchestrator struct {
	configDir string
	registry  *Registry
	models    ModelFactory
	timeout   time.Duration
}

// NewOrchestrator creates an Orchestrator reading configs from configDir.
// A positive timeout bounds each agent run.
func NewOrchestrator(configDir string, registry *Registry, models ModelFactory, timeout time.Duration) *Orchestrator {
	return &Orchestrator{configDir: configDir, registry: registry, models: models, timeout: timeout}
}

// Invoke runs the named agent on question.
func (o *Orchestrator) Invoke(ctx context.Context, agentName, question string) (*Answer, error) {
	cfg, err := LoadConfig(o.configDir, agentName)
	if err != nil {
		return nil, err
	}
	tools, err := o.registry.Resolve(cfg.Tools)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", agentName, err)
	}
	model, err := o.models(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", agentName, err)
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	exec := &Executor{Name: agentName, Model: model, Tools: tools, MaxIterations: cfg.MaxIterations}
	answer, err := exec.Run(ctx, question)
	if err != nil {
		return nil, err
	}
	logger.Named("agent").Infow("agent answered",
		"agent", agentName,
		"tool_calls", len(answer.ToolCalls),
		"duration", time.Since(start),
	)
	return answer, nil
}

// Route asks the router agent which agent should answer, then invokes it.
// Unparseable or unknown choices fall back to the analysis agent.
func (o *Orchestrator) Route(ctx context.Context, question string) (*Routed, error) {
	raw, err := o.Invoke(ctx, RouterAgent, question)
	if err != nil {
		return nil, err
	}

	target := FallbackAgent
	decision, ok := ParseRouteDecision(raw.Text)
	if ok && decision.AgentName != RouterAgent && Exists(o.configDir, decision.AgentName) {
		target = decision.AgentName
	} else {
		logger.Named("agent").Infow("router fell back", "output", raw.Text, "fallback", FallbackAgent)
	}

	answer, err := o.Invoke(ctx, target, question)
	if err != nil {
		return nil, err
	}
	if !ok {
		decision = nil
	}
	return &Routed{Agent: target, Decision: decision, Answer: answer}, nil
}

// ParseRouteDecision reads the router output, which may be wrapped in a
// fenced json code block.
func ParseRouteDecision(output string) (*RouteDecision, bool) {
	text := strings.TrimSpace(output)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimPrefix(text, "json")
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	var decision RouteDecision
	if err := json.Unmarshal([]byte(text), &decision); err != nil {
		return nil, false
	}
	decision.AgentName = strings.TrimSpace(decision.AgentName)
	if decision.AgentName == "" {
		return nil, false
	}
	return &decision, true
}
