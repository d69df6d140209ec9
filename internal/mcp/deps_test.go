package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"findwork-assistant/internal/config"
	"findwork-assistant/pkg/logging"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Findwork.APIKey = "key"
	return cfg
}

func TestProvideFindworkConfigWiresLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.Findwork.RateLimit = 2.5

	fwCfg := provideFindworkConfig(cfg, logging.NewNop())

	require.NotNil(t, fwCfg.Limiter)
	assert.Equal(t, rate.Limit(2.5), fwCfg.Limiter.Limit())
}

func TestProvideFindworkConfigNoLimiterByDefault(t *testing.T) {
	fwCfg := provideFindworkConfig(testConfig(), logging.NewNop())

	assert.Nil(t, fwCfg.Limiter)
}

func TestBuildResources(t *testing.T) {
	cfg := testConfig()
	cfg.Findwork.RateLimit = 1

	res, err := BuildResources(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, res.Assistant)
}
