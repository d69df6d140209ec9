package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "MCP_HOST", "PORT",
		"FINDWORK_API_KEY", "FINDWORK_BASE_URL",
		"FINDWORK_TIMEOUT", "FINDWORK_RETRIES", "FINDWORK_BACKOFF",
		"FINDWORK_RATE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FINDWORK_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINDWORK_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Findwork.Timeout)
	assert.Equal(t, 3, cfg.Findwork.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Findwork.Backoff)
	assert.Zero(t, cfg.Findwork.RateLimit)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINDWORK_API_KEY", "key")
	t.Setenv("PORT", "9090")
	t.Setenv("FINDWORK_TIMEOUT", "10s")
	t.Setenv("FINDWORK_RETRIES", "5")
	t.Setenv("FINDWORK_BACKOFF", "500ms")
	t.Setenv("FINDWORK_RATE", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Findwork.Timeout)
	assert.Equal(t, 5, cfg.Findwork.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Findwork.Backoff)
	assert.Equal(t, 2.5, cfg.Findwork.RateLimit)
}

func TestLoadRejectsBadRetries(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINDWORK_API_KEY", "key")
	t.Setenv("FINDWORK_RETRIES", "zero")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadRate(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINDWORK_API_KEY", "key")
	t.Setenv("FINDWORK_RATE", "-1")

	_, err := Load()
	require.Error(t, err)
}
