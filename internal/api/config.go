package api

import (
	"os"
	"time"
)

// Config holds backend API client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000".
	// Empty means no backend is configured (offline mode).
	BaseURL string

	// Timeout bounds a single request. Requests are never retried
	// automatically; the user re-triggers the action instead.
	Timeout time.Duration
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if u := os.Getenv("TUTOR_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("TUTOR_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Configured reports whether a backend base URL is set.
func (c Config) Configured() bool {
	return c.BaseURL != ""
}
