// Package place covers attractions and points of interest, backed by a maps
// search when a key is configured.
package place

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
	"github.com/adalundhe/voyant/core/search"
)

const Name = "place"

type Agent struct {
	gateway *llm.Gateway
	search  *search.Client
	logger  *slog.Logger
}

func New(gateway *llm.Gateway, searchClient *search.Client, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{gateway: gateway, search: searchClient, logger: logger.With("agent", Name)}
}

func (a *Agent) Name() string { return Name }

func (a *Agent) Handle(ctx context.Context, message string) agent.Reply {
	return a.HandleWithContext(ctx, message, agent.Context{}, nil, nil)
}

func (a *Agent) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	prompt := agent.BuildPrompt(SystemPrompt, message, reqCtx, history)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// SearchPlaces looks up points of interest matching a query within a city.
func (a *Agent) SearchPlaces(ctx context.Context, city, query string) agent.Reply {
	if city == "" || query == "" {
		return agent.Error("city and query are required").WithAgent(Name)
	}

	if a.search != nil && a.search.Available() {
		raw, err := a.search.Places(ctx, city, query)
		if err != nil {
			a.logger.Warn("place search failed, falling back to generated data", "error", err)
		} else {
			summary := fmt.Sprintf("Kết quả tìm kiếm %s tại %s:\n\n%v", query, city, raw)
			reply := a.gateway.Generate(ctx, fmt.Sprintf(formatResultsPrompt, summary))
			if reply.OK() {
				return reply.WithAgent(Name).WithRaw(raw)
			}
		}
	}

	prompt := fmt.Sprintf(searchFallbackPrompt, query, city)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// CityInsights gives an overview of a city for trip planning.
func (a *Agent) CityInsights(ctx context.Context, city string) agent.Reply {
	if city == "" {
		return agent.Error("city is required").WithAgent(Name)
	}
	prompt := fmt.Sprintf(cityInsightsPrompt, city)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}
