package agent

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"finagent/internal/logger"
)

// Content roles understood by the Gemini API.
const (
	roleUser  = "user"
	roleModel = "model"
)

// ErrMaxIterations is returned when the model keeps calling tools past the limit.
var ErrMaxIterations = errors.New("agent exceeded max iterations")

// ToolCall records one tool invocation made while answering.
type ToolCall struct {
	Name   string         `json:"name"`
	Args   map[string]any `json:"args"`
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Answer is the final text of an agent together with the tools it used.
type Answer struct {
	Text      string     `json:"answer"`
	ToolCalls []ToolCall `json:"tool_calls"`
}

// Executor runs the tool-calling loop of one agent.
type Executor struct {
	Name          string
	Model         ChatModel
	Tools         []Tool
	MaxIterations int
}

// Run answers question, dispatching the model's function calls until it
// replies with text.
func (e *Executor) Run(ctx context.Context, question string) (*Answer, error) {
	maxIter := e.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	byName := make(map[string]Tool, len(e.Tools))
	for _, t := range e.Tools {
		byName[t.Name()] = t
	}
	decls := Declarations(e.Tools)

	history := []*genai.Content{{Role: roleUser, Parts: []*genai.Part{{Text: question}}}}
	answer := &Answer{ToolCalls: []ToolCall{}}

	for i := 0; i < maxIter; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reply, err := e.Model.Send(ctx, history, decls)
		if err != nil {
			return nil, err
		}
		if len(reply.Calls) == 0 {
			answer.Text = reply.Text
			return answer, nil
		}

		content := reply.Content
		if content == nil {
			content = &genai.Content{}
			for _, call := range reply.Calls {
				content.Parts = append(content.Parts, &genai.Part{FunctionCall: call})
			}
		}
		if content.Role == "" {
			content.Role = roleModel
		}
		history = append(history, content)

		responses := &genai.Content{Role: roleUser}
		for _, call := range reply.Calls {
			record := e.dispatch(ctx, byName, call)
			answer.ToolCalls = append(answer.ToolCalls, record)

			response := record.Result
			if record.Error != "" {
				response = map[string]any{"error": record.Error}
			}
			responses.Parts = append(responses.Parts, &genai.Part{FunctionResponse: &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: response,
			}})
		}
		history = append(history, responses)
	}

	return nil, fmt.Errorf("%s: %w (%d)", e.Name, ErrMaxIterations, maxIter)
}

// dispatch invokes one call. Tool failures are reported back to the model
// rather than aborting the run.
func (e *Executor) dispatch(ctx context.Context, byName map[string]Tool, call *genai.FunctionCall) ToolCall {
	record := ToolCall{Name: call.Name, Args: call.Args}
	tool, ok := byName[call.Name]
	if !ok {
		record.Error = fmt.Sprintf("unknown function %s", call.Name)
		return record
	}

	result, err := tool.Invoke(ctx, call.Args)
	if err != nil {
		logger.Named("agent").Warnw("tool call failed", "agent", e.Name, "tool", call.Name, "error", err)
		record.Error = err.Error()
		return record
	}
	if result == nil {
		result = map[string]any{}
	}
	record.Result = result
	return record
}
