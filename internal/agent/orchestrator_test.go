package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModels answers per agent from a queue of texts and records invocations.
type fakeModels struct {
	answers map[string][]string
	invoked []string
}

func (f *fakeModels) factory(_ context.Context, cfg *Config) (ChatModel, error) {
	f.invoked = append(f.invoked, cfg.Name)
	queue := f.answers[cfg.Name]
	if len(queue) == 0 {
		return nil, errors.New("no scripted answer for " + cfg.Name)
	}
	f.answers[cfg.Name] = queue[1:]
	return &scriptedModel{replies: []*Reply{textReply(queue[0])}}, nil
}

func newTestOrchestrator(t *testing.T, models *fakeModels) *Orchestrator {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{RouterAgent, FallbackAgent, "registration_agent"} {
		writeConfig(t, dir, name, "llm:\n  provider: google\n  model_name: m\ntools: []\n")
	}
	writeConfig(t, dir, "broken_agent", "llm:\n  model_name: m\ntools: [no_such_tool]\n")

	registry, err := NewRegistry(echoTool("echo"))
	require.NoError(t, err)
	return NewOrchestrator(dir, registry, models.factory, time.Minute)
}

func TestOrchestrator_Invoke(t *testing.T) {
	models := &fakeModels{answers: map[string][]string{"registration_agent": {"Registered"}}}
	o := newTestOrchestrator(t, models)

	answer, err := o.Invoke(context.Background(), "registration_agent", "Register 20 ITSA4")
	require.NoError(t, err)
	assert.Equal(t, "Registered", answer.Text)

	_, err = o.Invoke(context.Background(), "ghost_agent", "q")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	_, err = o.Invoke(context.Background(), "broken_agent", "q")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestOrchestrator_Route(t *testing.T) {
	tests := []struct {
		name         string
		routerOutput string
		wantAgent    string
		wantDecision bool
	}{
		{"json", `{"agent_name": "registration_agent", "confidence": 0.87, "reasoning": "keywords"}`, "registration_agent", true},
		{"fenced", "```json\n{\"agent_name\": \"registration_agent\", \"confidence\": 0.9}\n```", "registration_agent", true},
		{"not_json", "not-json-output", FallbackAgent, false},
		{"unknown_agent", `{"agent_name": "trading_agent"}`, FallbackAgent, true},
		{"self", `{"agent_name": "router_agent"}`, FallbackAgent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models := &fakeModels{answers: map[string][]string{
				RouterAgent:          {tt.routerOutput},
				"registration_agent": {"Registered asset successfully"},
				FallbackAgent:        {"Analysis response"},
			}}
			o := newTestOrchestrator(t, models)

			routed, err := o.Route(context.Background(), "question")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAgent, routed.Agent)
			assert.Equal(t, []string{RouterAgent, tt.wantAgent}, models.invoked)
			assert.Equal(t, tt.wantDecision, routed.Decision != nil)
			if tt.wantAgent == FallbackAgent {
				assert.Equal(t, "Analysis response", routed.Answer.Text)
			} else {
				assert.Equal(t, "Registered asset successfully", routed.Answer.Text)
			}
		})
	}
}

func TestParseRouteDecision(t *testing.T) {
	d, ok := ParseRouteDecision("  ```\n{\"agent_name\":\" management_agent \",\"confidence\":0.5,\"reasoning\":\"fix\"}\n```  ")
	require.True(t, ok)
	assert.Equal(t, "management_agent", d.AgentName)
	assert.InDelta(t, 0.5, d.Confidence, 1e-9)
	assert.Equal(t, "fix", d.Reasoning)

	_, ok = ParseRouteDecision(`{"confidence": 1}`)
	assert.False(t, ok)
	_, ok = ParseRouteDecision("")
	assert.False(t, ok)
}
