package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the LLM provider for offline generation.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI settings. BaseURL allows OpenAI-compatible
// endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig bounds retries for transient provider failures. Retry
// exists only at this layer; backend API calls are never retried.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// overrideFromEnv replaces *dst with the named variable when it is set.
func overrideFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from TUTOR_* environment variables,
// falling back to the standard provider key variables when no explicit
// provider is selected.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overrideFromEnv(&cfg.Provider, "TUTOR_LLM_PROVIDER")
	overrideFromEnv(&cfg.Anthropic.APIKey, "TUTOR_ANTHROPIC_API_KEY")
	overrideFromEnv(&cfg.Anthropic.Model, "TUTOR_ANTHROPIC_MODEL")
	overrideFromEnv(&cfg.OpenAI.APIKey, "TUTOR_OPENAI_API_KEY")
	overrideFromEnv(&cfg.OpenAI.Model, "TUTOR_OPENAI_MODEL")
	overrideFromEnv(&cfg.OpenAI.BaseURL, "TUTOR_OPENAI_BASE_URL")
	overrideFromEnv(&cfg.Gemini.APIKey, "TUTOR_GEMINI_API_KEY")
	overrideFromEnv(&cfg.Gemini.Model, "TUTOR_GEMINI_MODEL")

	// Fall back to the conventional key variables when nothing explicit is set.
	if cfg.Anthropic.APIKey == "" && cfg.OpenAI.APIKey == "" && cfg.Gemini.APIKey == "" {
		switch {
		case os.Getenv("GEMINI_API_KEY") != "":
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
		case os.Getenv("OPENAI_API_KEY") != "":
			cfg.Provider = "openai"
			cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
		case os.Getenv("ANTHROPIC_API_KEY") != "":
			cfg.Provider = "anthropic"
			cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	return cfg
}

// Validate checks that the selected provider has its key set.
func (c Config) Validate() error {
	var key, envVar string
	switch c.Provider {
	case "mock":
		return nil
	case "anthropic":
		key, envVar = c.Anthropic.APIKey, "TUTOR_ANTHROPIC_API_KEY"
	case "openai":
		key, envVar = c.OpenAI.APIKey, "TUTOR_OPENAI_API_KEY"
	case "gemini":
		key, envVar = c.Gemini.APIKey, "TUTOR_GEMINI_API_KEY"
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", envVar, c.Provider)
	}
	return nil
}
