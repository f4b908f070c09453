package agent

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrUnknownTool is returned when a config names a tool that is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is a function an agent may call.
type Tool interface {
	Name() string
	Declaration() *genai.FunctionDeclaration
	Invoke(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Registry holds the tools available to agents, keyed by name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds a registry. Tool names must be unique.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, dup := r.tools[t.Name()]; dup {
			return nil, fmt.Errorf("duplicate tool %q", t.Name())
		}
		r.tools[t.Name()] = t
	}
	return r, nil
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Resolve returns the named tools in order.
func (r *Registry) Resolve(names []string) ([]Tool, error) {
	out := make([]Tool, 0, len(names))
	for _, name := range names {
		t, ok := r.tools[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownTool)
		}
		out = append(out, t)
	}
	return out, nil
}

// Declarations returns the function declarations of tools.
func Declarations(tools []Tool) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		result = append(result, t.Declaration())
	}
	return result
}

// funcTool adapts a declaration and a function into a Tool.
type funcTool struct {
	decl *genai.FunctionDeclaration
	fn   func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (t *funcTool) Name() string                            { return t.decl.Name }
func (t *funcTool) Declaration() *genai.FunctionDeclaration { return t.decl }
func (t *funcTool) Invoke(ctx context.Context, args map[string]any) (map[string]any, error) {
	return t.fn(ctx, args)
}
