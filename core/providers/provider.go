// Package providers adapts the generative-model backends behind one narrow
// capability: prompt in, completion text out. Each adapter maps its SDK's
// rate-limit signals onto the shared error tiers so the gateway retry policy
// works uniformly.
package providers

import (
	"context"
	"fmt"
)

// Provider is the black-box generative capability consumed by the gateway.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType identifies a provider family.
type ProviderType string

const (
	ProviderTypeGoogle    ProviderType = "google"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOpenAI    ProviderType = "openai"
)

// ModelConfig is the immutable per-model descriptor selected once at
// responder construction.
type ModelConfig struct {
	Key         string
	Name        string
	Provider    ProviderType
	MaxTokens   int
	Temperature float64
}

// SupportedModels enumerates the selectable model configurations.
var SupportedModels = map[string]ModelConfig{
	"gemini": {
		Key:         "gemini",
		Name:        "gemini-2.0-flash",
		Provider:    ProviderTypeGoogle,
		MaxTokens:   1024,
		Temperature: 0.7,
	},
	"claude": {
		Key:         "claude",
		Name:        "claude-haiku-4-5-20251001",
		Provider:    ProviderTypeAnthropic,
		MaxTokens:   4096,
		Temperature: 0.7,
	},
	"gpt4": {
		Key:         "gpt4",
		Name:        "gpt-4-turbo-preview",
		Provider:    ProviderTypeOpenAI,
		MaxTokens:   4096,
		Temperature: 0.7,
	},
}

// DefaultModel is the model key used when none is configured.
const DefaultModel = "gemini"

// Credentials holds the per-family API keys sourced from the environment.
type Credentials struct {
	GeminiAPIKey    string
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// New constructs the provider for a model key using the given credentials.
func New(ctx context.Context, modelKey string, creds Credentials) (Provider, error) {
	if modelKey == "" {
		modelKey = DefaultModel
	}

	config, ok := SupportedModels[modelKey]
	if !ok {
		return nil, fmt.Errorf("unsupported model type: %s", modelKey)
	}

	switch config.Provider {
	case ProviderTypeGoogle:
		return NewGeminiProvider(ctx, config, creds.GeminiAPIKey)
	case ProviderTypeAnthropic:
		return NewAnthropicProvider(config, creds.AnthropicAPIKey)
	case ProviderTypeOpenAI:
		return NewOpenAIProvider(config, creds.OpenAIAPIKey)
	default:
		return nil, fmt.Errorf("unsupported provider family: %s", config.Provider)
	}
}
