// Package config loads the assistant configuration: a YAML file overlaid
// with environment credentials, plus optional hot reload of the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adalundhe/voyant/core/errors"
	"github.com/adalundhe/voyant/core/providers"
)

const defaultCacheTTL = 3600 * time.Second

// Config is the full assistant configuration. Durations are YAML strings
// ("90s", "5m") parsed at load time.
type Config struct {
	// Model selects the provider configuration by key (gemini, claude, gpt4).
	Model string `yaml:"model"`

	// CacheTTL bounds how long gateway completions are served from cache.
	CacheTTL string `yaml:"cache_ttl"`

	// Retry applies to model and search collaborator calls.
	Retry RetryConfig `yaml:"retry"`

	// Keywords optionally overrides the router keyword table.
	Keywords map[string][]string `yaml:"keywords,omitempty"`

	// Credentials come from the environment, never the file.
	Credentials Credentials `yaml:"-"`

	cacheTTL time.Duration
}

// RetryConfig is the YAML shape of the retry policy.
type RetryConfig struct {
	MaxAttempts   int     `yaml:"max_attempts"`
	InitialDelay  string  `yaml:"initial_delay"`
	MaxDelay      string  `yaml:"max_delay"`
	Multiplier    float64 `yaml:"multiplier"`
	UseRetryAfter bool    `yaml:"use_retry_after"`
}

// Policy converts the YAML shape to the runtime retry policy, falling back
// to defaults for unset fields.
func (r RetryConfig) Policy() errors.RetryPolicy {
	policy := errors.DefaultRetryPolicy()

	if r.MaxAttempts > 0 {
		policy.MaxAttempts = r.MaxAttempts
	}
	if d, err := time.ParseDuration(r.InitialDelay); err == nil && d > 0 {
		policy.InitialDelay = d
	}
	if d, err := time.ParseDuration(r.MaxDelay); err == nil && d > 0 {
		policy.MaxDelay = d
	}
	if r.Multiplier > 0 {
		policy.Multiplier = r.Multiplier
	}
	return policy
}

// Credentials holds the collaborator API keys.
type Credentials struct {
	Gemini    string
	Anthropic string
	OpenAI    string
	SerpAPI   string
}

// ProviderCredentials converts to the provider package's credential set.
func (c Credentials) ProviderCredentials() providers.Credentials {
	return providers.Credentials{
		GeminiAPIKey:    c.Gemini,
		AnthropicAPIKey: c.Anthropic,
		OpenAIAPIKey:    c.OpenAI,
	}
}

// CacheTTLDuration returns the parsed cache TTL.
func (c *Config) CacheTTLDuration() time.Duration {
	if c.cacheTTL > 0 {
		return c.cacheTTL
	}
	return defaultCacheTTL
}

// Default returns the shipped configuration.
func Default() *Config {
	return &Config{
		Model:    providers.DefaultModel,
		cacheTTL: defaultCacheTTL,
	}
}

// Load reads the YAML file at path (optional; empty path means defaults) and
// overlays environment credentials.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := resolve(cfg); err != nil {
		return nil, err
	}

	cfg.Credentials = credentialsFromEnv()
	if model := os.Getenv("VOYANT_MODEL"); model != "" {
		cfg.Model = model
	}
	return cfg, nil
}

func resolve(cfg *Config) error {
	if cfg.Model == "" {
		cfg.Model = providers.DefaultModel
	}

	cfg.cacheTTL = defaultCacheTTL
	if cfg.CacheTTL != "" {
		d, err := time.ParseDuration(cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("parse cache_ttl: %w", err)
		}
		cfg.cacheTTL = d
	}
	return nil
}

func credentialsFromEnv() Credentials {
	return Credentials{
		Gemini:    os.Getenv("GEMINI_API_KEY"),
		Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAI:    os.Getenv("OPENAI_API_KEY"),
		SerpAPI:   os.Getenv("SERPAPI_API_KEY"),
	}
}
