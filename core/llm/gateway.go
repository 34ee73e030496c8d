// Package llm wraps every responder's provider call with caching, a
// rate-limit-only retry policy, and the uniform Reply contract. Responders
// never see raw provider errors.
package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/adalundhe/voyant/core/agent"
	"github.com/adalundhe/voyant/core/errors"
	"github.com/adalundhe/voyant/core/providers"
)

// Gateway is the uniform interface between one responder and its provider.
type Gateway struct {
	provider providers.Provider
	cache    *replyCache
	policy   errors.RetryPolicy
	logger   *slog.Logger
	sleep    func(time.Duration)
	log      *ExchangeLog
	cacheTTL time.Duration
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(policy errors.RetryPolicy) Option {
	return func(g *Gateway) { g.policy = policy }
}

// WithCacheTTL overrides the default cache TTL. Takes effect at construction.
func WithCacheTTL(ttl time.Duration) Option {
	return func(g *Gateway) { g.cacheTTL = ttl }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) { g.logger = logger }
}

// WithSleep replaces the backoff sleep. Tests swap in a recorder.
func WithSleep(sleep func(time.Duration)) Option {
	return func(g *Gateway) { g.sleep = sleep }
}

// NewGateway builds a gateway around the given provider.
func NewGateway(provider providers.Provider, opts ...Option) (*Gateway, error) {
	g := &Gateway{
		provider: provider,
		policy:   errors.DefaultRetryPolicy(),
		logger:   slog.Default(),
		sleep:    time.Sleep,
		log:      NewExchangeLog(0),
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(g)
	}

	cache, err := newReplyCache(g.cacheTTL)
	if err != nil {
		return nil, err
	}
	g.cache = cache

	return g, nil
}

// Generate returns a completion Reply for the prompt. Cache hits are returned
// unchanged with no provider call and no log append. Rate-limited calls are
// retried with backoff up to the attempt ceiling; every other failure is
// surfaced immediately as an error Reply.
func (g *Gateway) Generate(ctx context.Context, prompt string) agent.Reply {
	if cached, ok := g.cache.Get(prompt); ok {
		g.logger.Debug("gateway cache hit", "provider", g.provider.Name())
		return cached
	}

	var lastErr error
	for attempt := 0; attempt < g.policy.MaxAttempts; attempt++ {
		content, err := g.provider.Generate(ctx, prompt)
		if err == nil {
			reply := agent.Success(content)
			g.cache.Set(prompt, reply)
			g.log.Record(prompt, content)
			return reply
		}

		lastErr = err
		if !errors.IsRateLimit(err) {
			g.logger.Error("provider call failed",
				"provider", g.provider.Name(),
				"attempt", attempt+1,
				"error", err,
			)
			return agent.Error(err.Error())
		}

		if attempt < g.policy.MaxAttempts-1 {
			delay := errors.DelayFor(attempt, err, g.policy)
			g.logger.Warn("provider rate limited, backing off",
				"provider", g.provider.Name(),
				"attempt", attempt+1,
				"delay", delay,
			)
			g.sleep(delay)
		}
	}

	g.logger.Error("provider retries exhausted",
		"provider", g.provider.Name(),
		"attempts", g.policy.MaxAttempts,
		"error", lastErr,
	)
	return agent.Error(lastErr.Error())
}

// Exchanges exposes the bounded exchange log for introspection.
func (g *Gateway) Exchanges() []Exchange {
	return g.log.Recent()
}

// Close releases the cache resources.
func (g *Gateway) Close() {
	g.cache.Close()
}
