// Package food recommends dishes and restaurants for a destination.
package food

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
)

const (
	Name = "food"

	defaultLocation = "Đà Nẵng"
	defaultCuisine  = "local"
)

// cuisineHints maps keyword hits in the message to a cuisine tag fed into the
// prompt so recommendations stay on topic.
var cuisineHints = map[string][]string{
	"seafood":    {"seafood", "hải sản"},
	"vegetarian": {"vegetarian", "vegan", "chay"},
	"street":     {"street food", "đồ ăn đường phố", "ăn vặt"},
	"japanese":   {"japanese", "sushi", "món nhật"},
	"korean":     {"korean", "món hàn"},
	"western":    {"western", "món âu", "pizza", "pasta"},
}

type Agent struct {
	gateway *llm.Gateway
	logger  *slog.Logger
}

func New(gateway *llm.Gateway, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	return &Agent{gateway: gateway, logger: logger.With("agent", Name)}
}

func (a *Agent) Name() string { return Name }

func (a *Agent) Handle(ctx context.Context, message string) agent.Reply {
	return a.HandleWithContext(ctx, message, agent.Context{}, nil, nil)
}

func (a *Agent) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	location := extractLocation(message, reqCtx, bag)
	cuisine := extractCuisine(message)

	focus := fmt.Sprintf("%s\nFocus area: %s cuisine in %s.\n", SystemPrompt, cuisine, location)
	prompt := agent.BuildPrompt(focus, message, reqCtx, history)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

// extractLocation prefers a location named in the message itself, then any
// location accumulated over the session, then the default.
func extractLocation(message string, reqCtx agent.Context, bag entities.Bag) string {
	if fresh := entities.Extract(message).Locations(); len(fresh) > 0 {
		return fresh[0]
	}
	if len(reqCtx.Locations) > 0 {
		return reqCtx.Locations[len(reqCtx.Locations)-1]
	}
	if bag != nil {
		if known := bag.Locations(); len(known) > 0 {
			return known[len(known)-1]
		}
	}
	return defaultLocation
}

func extractCuisine(message string) string {
	lowered := strings.ToLower(message)
	for cuisine, hints := range cuisineHints {
		for _, hint := range hints {
			if strings.Contains(lowered, hint) {
				return cuisine
			}
		}
	}
	return defaultCuisine
}
