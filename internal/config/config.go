package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime settings for the assistant server.
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Findwork struct {
		APIKey      string
		BaseURL     string
		Timeout     time.Duration // per attempt
		MaxAttempts int
		Backoff     time.Duration
		// RateLimit caps outgoing requests per second; 0 means unlimited.
		RateLimit float64
	}
}

// Load populates config from environment variables. A missing Findwork
// API key is fatal here, before any request is possible.
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Findwork.Timeout = 5 * time.Second
	cfg.Findwork.MaxAttempts = 3
	cfg.Findwork.Backoff = 2 * time.Second

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Findwork.APIKey = os.Getenv("FINDWORK_API_KEY")
	cfg.Findwork.BaseURL = os.Getenv("FINDWORK_BASE_URL")

	if v := os.Getenv("FINDWORK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid FINDWORK_TIMEOUT: %w", err)
		}
		cfg.Findwork.Timeout = d
	}

	if v := os.Getenv("FINDWORK_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid FINDWORK_RETRIES: %q", v)
		}
		cfg.Findwork.MaxAttempts = n
	}

	if v := os.Getenv("FINDWORK_BACKOFF"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid FINDWORK_BACKOFF: %w", err)
		}
		cfg.Findwork.Backoff = d
	}

	if v := os.Getenv("FINDWORK_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			return cfg, fmt.Errorf("invalid FINDWORK_RATE: %q", v)
		}
		cfg.Findwork.RateLimit = r
	}

	var missingVars []string

	if cfg.Findwork.APIKey == "" {
		missingVars = append(missingVars, "FINDWORK_API_KEY")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
