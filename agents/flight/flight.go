// Package flight answers flight queries, backed by the Google Flights engine
// when a search key is configured and by model-generated data otherwise.
package flight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
	"github.com/adalundhe/voyant/core/search"
)

const (
	Name = "flight"

	missingKeywordsMessage = "Vui lòng cung cấp thông tin về chuyến bay bạn muốn tìm kiếm."
)

// flightKeywords gates Handle so off-topic messages get a hint instead of a
// provider call.
var flightKeywords = []string{"chuyến bay", "vé máy bay", "bay", "flight"}

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

// Handle gates plain messages on flight keywords; off-topic text gets a hint
// instead of a provider call. Routed requests go through HandleWithContext,
// which trusts the router's selection and never gates.
func (a *Agent) Handle(ctx context.Context, message string) agent.Reply {
	if !mentionsFlights(message) {
		return agent.Error(missingKeywordsMessage).WithAgent(Name)
	}
	return a.HandleWithContext(ctx, message, agent.Context{}, nil, nil)
}

func (a *Agent) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	if from, to := extractRoute(message); from != "" && to != "" && a.searchAvailable() {
		if reply, ok := a.searchAndFormat(ctx, from, to, ""); ok {
			return reply
		}
	}

	prompt := agent.BuildPrompt(SystemPrompt, message, reqCtx, history)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// SearchFlights looks up one-way flights between two cities on a given date.
func (a *Agent) SearchFlights(ctx context.Context, fromCity, toCity, date string) agent.Reply {
	if fromCity == "" || toCity == "" || date == "" {
		return agent.Error("from_city, to_city and date are required").WithAgent(Name)
	}

	if a.searchAvailable() {
		if reply, ok := a.searchAndFormat(ctx, fromCity, toCity, date); ok {
			return reply
		}
	}

	prompt := fmt.Sprintf(searchFallbackPrompt, fromCity, toCity, date)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// RouteInsights describes a route without searching live fares.
func (a *Agent) RouteInsights(ctx context.Context, fromCity, toCity string) agent.Reply {
	if fromCity == "" || toCity == "" {
		return agent.Error("from_city and to_city are required").WithAgent(Name)
	}
	prompt := fmt.Sprintf(routeInsightsPrompt, fromCity, toCity)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

func (a *Agent) searchAvailable() bool {
	return a.search != nil && a.search.Available()
}

// searchAndFormat runs the live search and has the model render the raw
// results. A false return means the caller should fall back to generation.
func (a *Agent) searchAndFormat(ctx context.Context, from, to, date string) (agent.Reply, bool) {
	raw, err := a.search.Flights(ctx, from, to, date)
	if err != nil {
		a.logger.Warn("flight search failed, falling back to generated data", "error", err)
		return agent.Reply{}, false
	}

	summary := fmt.Sprintf("Kết quả tìm kiếm chuyến bay từ %s đến %s:\n\n%v", from, to, raw)
	reply := a.gateway.Generate(ctx, fmt.Sprintf(formatResultsPrompt, summary))
	if !reply.OK() {
		return agent.Reply{}, false
	}
	return reply.WithAgent(Name).WithRaw(raw), true
}

func mentionsFlights(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range flightKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
