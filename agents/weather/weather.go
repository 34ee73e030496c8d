// Package weather answers forecast and climate questions for the places a
// traveler is considering.
package weather

import (
	"context"
	"log/slog"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
)

const Name = "weather"

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
	prompt := agent.BuildPrompt(SystemPrompt, message, agent.Context{}, nil)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

func (a *Agent) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	prompt := agent.BuildPrompt(SystemPrompt, message, reqCtx, history)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}
