package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// scriptedModel replays replies in order and records what it was sent.
type scriptedModel struct {
	replies   []*Reply
	err       error
	histories [][]*genai.Content
	tools     [][]*genai.FunctionDeclaration
}

func (m *scriptedModel) Send(_ context.Context, history []*genai.Content, tools []*genai.FunctionDeclaration) (*Reply, error) {
	m.histories = append(m.histories, append([]*genai.Content(nil), history...))
	m.tools = append(m.tools, tools)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.replies) == 0 {
		return nil, ErrEmptyReply
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	return r, nil
}

func textReply(s string) *Reply { return &Reply{Text: s} }

func callReply(calls ...*genai.FunctionCall) *Reply { return &Reply{Calls: calls} }

func echoTool(name string) Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{Name: name},
		fn: func(_ context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"echo": args["v"]}, nil
		},
	}
}

func failingTool(name string) Tool {
	return &funcTool{
		decl: &genai.FunctionDeclaration{Name: name},
		fn: func(context.Context, map[string]any) (map[string]any, error) {
			return nil, errors.New("boom")
		},
	}
}

func TestExecutor_TextAnswer(t *testing.T) {
	model := &scriptedModel{replies: []*Reply{textReply("hello")}}
	exec := &Executor{Name: "a", Model: model, Tools: []Tool{echoTool("echo")}}

	answer, err := exec.Run(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", answer.Text)
	assert.Empty(t, answer.ToolCalls)
	require.Len(t, model.tools, 1)
	assert.Len(t, model.tools[0], 1)
	assert.Equal(t, "hi", model.histories[0][0].Parts[0].Text)
}

func TestExecutor_ToolLoop(t *testing.T) {
	model := &scriptedModel{replies: []*Reply{
		callReply(&genai.FunctionCall{ID: "1", Name: "echo", Args: map[string]any{"v": "x"}}),
		callReply(
			&genai.FunctionCall{ID: "2", Name: "fail"},
			&genai.FunctionCall{ID: "3", Name: "nope"},
		),
		textReply("done"),
	}}
	exec := &Executor{Name: "a", Model: model, Tools: []Tool{echoTool("echo"), failingTool("fail")}}

	answer, err := exec.Run(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "done", answer.Text)

	require.Len(t, answer.ToolCalls, 3)
	assert.Equal(t, "echo", answer.ToolCalls[0].Name)
	assert.Equal(t, map[string]any{"echo": "x"}, answer.ToolCalls[0].Result)
	assert.Equal(t, "boom", answer.ToolCalls[1].Error)
	assert.Contains(t, answer.ToolCalls[2].Error, "unknown function")

	// user question, model call, tool response, model calls, tool responses
	last := model.histories[2]
	require.Len(t, last, 5)
	assert.Equal(t, "model", last[1].Role)
	resp := last[2].Parts[0].FunctionResponse
	require.NotNil(t, resp)
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "x", resp.Response["echo"])
	assert.Equal(t, "boom", last[4].Parts[0].FunctionResponse.Response["error"])
}

func TestExecutor_MaxIterations(t *testing.T) {
	call := &genai.FunctionCall{Name: "echo"}
	model := &scriptedModel{replies: []*Reply{callReply(call), callReply(call), callReply(call)}}
	exec := &Executor{Name: "a", Model: model, Tools: []Tool{echoTool("echo")}, MaxIterations: 2}

	_, err := exec.Run(context.Background(), "loop")
	assert.ErrorIs(t, err, ErrMaxIterations)
	assert.Len(t, model.histories, 2)
}

func TestExecutor_ModelError(t *testing.T) {
	exec := &Executor{Name: "a", Model: &scriptedModel{err: errors.New("quota")}}
	_, err := exec.Run(context.Background(), "q")
	assert.EqualError(t, err, "quota")
}

func TestNewReply(t *testing.T) {
	reply := NewReply(&genai.Content{Parts: []*genai.Part{
		{Text: "thinking", Thought: true},
		{Text: "Hello "},
		{Text: "world"},
		{FunctionCall: &genai.FunctionCall{Name: "f"}},
	}})
	assert.Equal(t, "Hello world", reply.Text)
	require.Len(t, reply.Calls, 1)
	assert.Equal(t, "f", reply.Calls[0].Name)
}

func TestRegistry(t *testing.T) {
	_, err := NewRegistry(echoTool("a"), echoTool("a"))
	assert.Error(t, err)

	r, err := NewRegistry(echoTool("a"), echoTool("b"))
	require.NoError(t, err)

	tools, err := r.Resolve([]string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, "b", tools[0].Name())

	_, err = r.Resolve([]string{"c"})
	assert.ErrorIs(t, err, ErrUnknownTool)

	_, ok := r.Get("a")
	assert.True(t, ok)
	assert.Len(t, Declarations(tools), 2)
}

func TestGeminiFactory(t *testing.T) {
	factory := NewGeminiFactory(nil)

	_, err := factory(context.Background(), &Config{Name: "a", LLM: LLMConfig{Provider: "google", ModelName: "m"}})
	assert.ErrorIs(t, err, ErrModelUnavailable)

	_, err = factory(context.Background(), &Config{Name: "a", LLM: LLMConfig{Provider: "ollama", ModelName: "m"}})
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}
