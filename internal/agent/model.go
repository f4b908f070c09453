package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	// ErrUnsupportedProvider is returned for LLM providers without a client.
	ErrUnsupportedProvider = errors.New("unsupported LLM provider")
	// ErrModelUnavailable is returned when the provider has no configured client.
	ErrModelUnavailable = errors.New("chat model not configured")
	// ErrEmptyReply is returned when the model answers with no content.
	ErrEmptyReply = errors.New("empty model reply")
)

// Reply is one model turn. Either Calls is non-empty or Text holds the answer.
type Reply struct {
	Content *genai.Content
	Text    string
	Calls   []*genai.FunctionCall
}

// ChatModel produces the next turn of a conversation.
type ChatModel interface {
	Send(ctx context.Context, history []*genai.Content, tools []*genai.FunctionDeclaration) (*Reply, error)
}

// ModelFactory creates the chat model for an agent config.
type ModelFactory func(ctx context.Context, cfg *Config) (ChatModel, error)

// GeminiModel is a ChatModel backed by the Gemini API.
type GeminiModel struct {
	client      *genai.Client
	model       string
	temperature float32
	system      string
}

// NewGeminiFactory returns a ModelFactory serving the google provider from
// client. A nil client makes every agent unavailable.
func NewGeminiFactory(client *genai.Client) ModelFactory {
	return func(_ context.Context, cfg *Config) (ChatModel, error) {
		switch cfg.LLM.Provider {
		case "google", "":
			if client == nil {
				return nil, ErrModelUnavailable
			}
			if cfg.LLM.ModelName == "" {
				return nil, fmt.Errorf("agent %q has no model_name", cfg.Name)
			}
			return &GeminiModel{
				client:      client,
				model:       cfg.LLM.ModelName,
				temperature: cfg.LLM.Temperature,
				system:      cfg.PromptTemplate,
			}, nil
		default:
			return nil, fmt.Errorf("%q: %w", cfg.LLM.Provider, ErrUnsupportedProvider)
		}
	}
}

// Send implements ChatModel.
func (m *GeminiModel) Send(ctx context.Context, history []*genai.Content, tools []*genai.FunctionDeclaration) (*Reply, error) {
	temperature := m.temperature
	config := &genai.GenerateContentConfig{Temperature: &temperature}
	if m.system != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: m.system}}}
	}
	if len(tools) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: tools}}
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.model, history, config)
	if err != nil {
		return nil, fmt.Errorf("gemini %s: %w", m.model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyReply
	}
	return NewReply(resp.Candidates[0].Content), nil
}

// NewReply splits a model content into text and function calls.
func NewReply(content *genai.Content) *Reply {
	reply := &Reply{Content: content}
	var text strings.Builder
	for _, part := range content.Parts {
		switch {
		case part.FunctionCall != nil:
			reply.Calls = append(reply.Calls, part.FunctionCall)
		case part.Text != "" && !part.Thought:
			text.WriteString(part.Text)
		}
	}
	reply.Text = text.String()
	return reply
}
