//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"findwork-assistant/internal/assistant"
	"findwork-assistant/internal/config"
	"findwork-assistant/pkg/findwork"
	"findwork-assistant/pkg/logging"
)

// InitializeResources creates Resources with all dependencies wired up.
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Findwork API
		provideFindworkConfig,
		findwork.NewClient,
		wire.Bind(new(assistant.ListingFetcher), new(*findwork.Client)),

		// Pipeline service
		assistant.NewServiceWithDeps,

		newResources,
	)

	return &Resources{}, nil
}
