// Package travel is the general-purpose responder and the fallback when no
// specialist matches. It also short-circuits greetings and thanks with canned
// small-talk replies instead of spending a provider call on them.
package travel

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/entities"
	"github.com/adalundhe/voyant/core/llm"
)

const Name = "travel"

type Agent struct {
	gateway *llm.Gateway
	logger  *slog.Logger
	rng     *rand.Rand
}

type Option func(*Agent)

// WithRand seeds small-talk selection. Tests pass a fixed source.
func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) { a.rng = rng }
}

func New(gateway *llm.Gateway, logger *slog.Logger, opts ...Option) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Agent{
		gateway: gateway,
		logger:  logger.With("agent", Name),
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Agent) Name() string { return Name }

func (a *Agent) Handle(ctx context.Context, message string) agent.Reply {
	return a.HandleWithContext(ctx, message, agent.Context{}, nil, nil)
}

func (a *Agent) HandleWithContext(ctx context.Context, message string, reqCtx agent.Context, bag entities.Bag, history []agent.Turn) agent.Reply {
	if reply, ok := a.smallTalk(message); ok {
		return reply
	}
	prompt := agent.BuildPrompt(SystemPrompt, message, reqCtx, history)
	return a.gateway.Generate(ctx, prompt).WithAgent(Name)
}

func (a *Agent) smallTalk(message string) (agent.Reply, bool) {
	switch {
	case isGreeting(message):
		return agent.Success(greetingResponse(a.rng)).WithAgent(Name), true
	case isThankYou(message):
		return agent.Success(thankYouResponse).WithAgent(Name), true
	}
	return agent.Reply{}, false
}
