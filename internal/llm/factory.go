package llm

import (
	"context"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

// NewProvider builds the configured provider and wraps it in the
// middleware stack the app always runs with, so callers see
// retry(logging(base)).
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	// Mock skips the middleware so tests observe its calls directly.
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(WithLogging(base, events), cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
