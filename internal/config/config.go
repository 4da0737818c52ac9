// Package config assembles application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server needs to start. Provider credentials
// are individually optional: a missing credential soft-disables that
// provider rather than failing startup. The server additionally requires
// the completion API key and the database URL, checked by Validate; the
// scorer cannot generate scores offline, and the server's saved-jobs
// listing has nowhere to read from without storage.
type Config struct {
	Port        int
	DatabaseURL string

	// LLM completion boundary
	GeminiAPIKey string

	// Provider credentials (optional, each soft-disables its adapter)
	TheirStackAPIKey string
	RapidAPIKey      string
	AdzunaAppID      string
	AdzunaAPIKey     string

	// Optional bearer-token guard for the API
	JWTSecret string
}

// Load reads configuration from environment variables. It does not apply
// server-grade requirements; callers that need them run Validate. CLI
// commands that work without a store load without validating.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             3001,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		TheirStackAPIKey: os.Getenv("THEIRSTACK_API_KEY"),
		RapidAPIKey:      os.Getenv("RAPIDAPI_KEY"),
		AdzunaAppID:      os.Getenv("ADZUNA_APP_ID"),
		AdzunaAPIKey:     os.Getenv("ADZUNA_API_KEY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks required values and ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if c.GeminiAPIKey == "" {
		// Scoring has no offline path; a missing completion key is a fatal
		// misconfiguration, not a soft-disable.
		return fmt.Errorf("config error: GEMINI_API_KEY is required")
	}
	return nil
}
