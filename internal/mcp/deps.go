package mcp

import (
	"golang.org/x/time/rate"

	"findwork-assistant/internal/assistant"
	"findwork-assistant/internal/config"
	"findwork-assistant/pkg/findwork"
	"findwork-assistant/pkg/logging"
)

// Resources holds everything the tool layer depends on.
type Resources struct {
	Assistant *assistant.Service
}

// BuildResources wires the Findwork client and the assistant pipeline
// from config. The Findwork key is validated earlier, at config load.
func BuildResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	client, err := findwork.NewClient(provideFindworkConfig(cfg, logger))
	if err != nil {
		return nil, err
	}

	svc, err := assistant.NewService(
		assistant.WithFetcher(client),
		assistant.WithLogger(logger.Named("assistant")),
	)
	if err != nil {
		return nil, err
	}

	return &Resources{Assistant: svc}, nil
}

func provideFindworkConfig(cfg config.Config, logger *logging.Logger) findwork.Config {
	fwCfg := findwork.Config{
		APIKey:  cfg.Findwork.APIKey,
		BaseURL: cfg.Findwork.BaseURL,
		Timeout: cfg.Findwork.Timeout,
		Retry: findwork.RetryPolicy{
			MaxAttempts: cfg.Findwork.MaxAttempts,
			Backoff:     cfg.Findwork.Backoff,
		},
		Logger: logger.Named("findwork"),
	}

	if cfg.Findwork.RateLimit > 0 {
		fwCfg.Limiter = rate.NewLimiter(rate.Limit(cfg.Findwork.RateLimit), 1)
	}

	return fwCfg
}

func newResources(svc *assistant.Service) *Resources {
	return &Resources{Assistant: svc}
}
