// Package agent runs the configuration-driven natural-language front end:
// YAML agent configs, a static tool registry, a Gemini chat model and the
// tool-calling executor that ties them together.
package agent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxIterations bounds the tool-calling loop when a config sets none.
const DefaultMaxIterations = 8

var (
	// ErrAgentNotFound is returned when no config file exists for an agent.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrMissingEnv is returned when a config placeholder has no value.
	ErrMissingEnv = errors.New("missing environment variable")
)

var placeholderPattern = regexp.MustCompile(`\$\{(.*?)\}`)

// validName restricts agent names to what can safely become a file name.
var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// LLMConfig selects the chat model backing an agent.
type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	ModelName   string  `yaml:"model_name"`
	Temperature float32 `yaml:"temperature"`
}

// Config describes one agent.
type Config struct {
	Name           string    `yaml:"-"`
	Description    string    `yaml:"description"`
	LLM            LLMConfig `yaml:"llm"`
	PromptTemplate string    `yaml:"prompt_template"`
	Tools          []string  `yaml:"tools"`
	MaxIterations  int       `yaml:"max_iterations"`
}

// LoadConfig reads <dir>/<name>.yaml, substituting ${VAR} placeholders from
// the environment.
func LoadConfig(dir, name string) (*Config, error) {
	if !validName.MatchString(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrAgentNotFound)
	}

	raw, err := os.ReadFile(filepath.Join(dir, name+".yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrAgentNotFound)
		}
		return nil, fmt.Errorf("reading agent config %q: %w", name, err)
	}

	content, err := expandEnv(string(raw))
	if err != nil {
		return nil, fmt.Errorf("agent config %q: %w", name, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("parsing agent config %q: %w", name, err)
	}
	cfg.Name = name
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if strings.TrimSpace(cfg.PromptTemplate) == "" {
		cfg.PromptTemplate = "You are a helpful assistant."
	}
	return cfg, nil
}

// Exists reports whether a config file exists for the agent.
func Exists(dir, name string) bool {
	if !validName.MatchString(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, name+".yaml"))
	return err == nil && !info.IsDir()
}

func expandEnv(content string) (string, error) {
	var missing error
	out := placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := os.LookupEnv(key)
		if !ok && key == "GOOGLE_MODEL" && strings.EqualFold(os.Getenv("LLM_PROVIDER"), "ollama") {
			value, ok = os.LookupEnv("OLLAMA_MODEL")
		}
		if !ok {
			if missing == nil {
				missing = fmt.Errorf("Environment variable '%s' not found and is required: %w", key, ErrMissingEnv) //nolint:stylecheck // user-facing message
			}
			return match
		}
		return value
	})
	return out, missing
}
