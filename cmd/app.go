package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/adalundhe/voyant/agents/flight"
	"github.com/adalundhe/voyant/agents/food"
	"github.com/adalundhe/voyant/agents/hotel"
	"github.com/adalundhe/voyant/agents/place"
	"github.com/adalundhe/voyant/agents/travel"
	"github.com/adalundhe/voyant/agents/weather"
	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/config"
	"github.com/adalundhe/voyant/core/dispatch"
	"github.com/adalundhe/voyant/core/llm"
	"github.com/adalundhe/voyant/core/providers"
	"github.com/adalundhe/voyant/core/routing"
	"github.com/adalundhe/voyant/core/search"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if modelKey != "" {
		cfg.Model = modelKey
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// buildDispatcher wires one provider-backed gateway per responder family and
// assembles the dispatcher around them.
func buildDispatcher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dispatch.Dispatcher, error) {
	provider, err := providers.New(ctx, cfg.Model, cfg.Credentials.ProviderCredentials())
	if err != nil {
		return nil, fmt.Errorf("initialize provider: %w", err)
	}

	gateway, err := llm.NewGateway(provider,
		llm.WithRetryPolicy(cfg.Retry.Policy()),
		llm.WithCacheTTL(cfg.CacheTTLDuration()),
		llm.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize gateway: %w", err)
	}

	var searchClient *search.Client
	if cfg.Credentials.SerpAPI != "" {
		searchClient, err = search.NewClient(cfg.Credentials.SerpAPI, search.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("initialize search: %w", err)
		}
	} else {
		logger.Info("search key not configured, structured lookups fall back to generated data")
	}

	responders := []agent.Responder{
		flight.New(gateway, searchClient, logger),
		hotel.New(gateway, searchClient, logger),
		place.New(gateway, searchClient, logger),
		food.New(gateway, logger),
		weather.New(gateway, logger),
		travel.New(gateway, logger),
	}

	opts := []dispatch.Option{dispatch.WithLogger(logger)}
	if len(cfg.Keywords) > 0 {
		opts = append(opts, dispatch.WithRouter(routing.NewRouterWithKeywords(cfg.Keywords)))
	}
	return dispatch.New(responders, opts...), nil
}
