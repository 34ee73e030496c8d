// Package hotel handles accommodation queries, backed by the Google Hotels
// engine when a search key is configured.
package hotel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
	"github.com/adalundhe/voyant/core/search"
)

const Name = "hotel"

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

// SearchHotels looks up hotels in a city for a stay window.
func (a *Agent) SearchHotels(ctx context.Context, city, checkIn, checkOut string) agent.Reply {
	if city == "" || checkIn == "" || checkOut == "" {
		return agent.Error("city, check_in and check_out are required").WithAgent(Name)
	}

	if a.search != nil && a.search.Available() {
		raw, err := a.search.Hotels(ctx, city, checkIn, checkOut)
		if err != nil {
			a.logger.Warn("hotel search failed, falling back to generated data", "error", err)
		} else {
			summary := fmt.Sprintf("Kết quả tìm kiếm khách sạn tại %s (%s - %s):\n\n%v", city, checkIn, checkOut, raw)
			reply := a.gateway.Generate(ctx, fmt.Sprintf(formatResultsPrompt, summary))
			if reply.OK() {
				return reply.WithAgent(Name).WithRaw(raw)
			}
		}
	}

	prompt := fmt.Sprintf(searchFallbackPrompt, city, checkIn, checkOut)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// AreaInsights describes a neighborhood for travelers picking where to stay.
func (a *Agent) AreaInsights(ctx context.Context, city, area string) agent.Reply {
	if city == "" || area == "" {
		return agent.Error("city and area are required").WithAgent(Name)
	}
	prompt := fmt.Sprintf(areaInsightsPrompt, area, city)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}
