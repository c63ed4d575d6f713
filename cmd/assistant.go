package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/ai"
	"github.com/gigworks/gig-assistant/internal/ai/gemini"
	"github.com/gigworks/gig-assistant/internal/geo"
	"github.com/gigworks/gig-assistant/internal/marketplace"
	"github.com/gigworks/gig-assistant/internal/secrets"
)

// newAssistant wires the Gemini coordinator over the marketplace services.
func newAssistant(ctx context.Context, config *Config, log *zap.Logger) (ai.Assistant, error) {
	gcfg := &GeminiConfig{}
	if config != nil && config.AI != nil && config.AI.Gemini != nil {
		gcfg = config.AI.Gemini
	}

	key, err := secrets.Load("gemini api key", gcfg.APIKey, gcfg.APIKeyFile)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, key, gcfg.Model)
	if err != nil {
		return nil, err
	}

	return gemini.NewCoordinator(generator, newServices(config, log), log, gcfg.MaxLogLength), nil
}

// newServices builds the deterministic tool layer from the configured data
// paths and resolver tuning.
func newServices(config *Config, log *zap.Logger) *marketplace.Services {
	data := &DataConfig{}
	if config != nil && config.Data != nil {
		data = config.Data
	}

	minSimilarity := 0.0
	if config != nil && config.Resolver != nil {
		minSimilarity = config.Resolver.MinSimilarity
	}

	paths := marketplace.Paths{
		Jobs:    data.Jobs,
		History: data.History,
		Workers: data.Workers,
	}

	return marketplace.New(paths, geo.NewResolver(nil, minSimilarity), log)
}
