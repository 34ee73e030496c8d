package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	voyanterrors "github.com/adalundhe/voyant/core/errors"
)

// AnthropicProvider backs responders with Claude models.
type AnthropicProvider struct {
	client *anthropic.Client
	config ModelConfig
}

// NewAnthropicProvider creates a Claude-backed provider.
func NewAnthropicProvider(config ModelConfig, apiKey string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not configured")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &client, config: config}, nil
}

func (p *AnthropicProvider) Name() string {
	return string(ProviderTypeAnthropic)
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.config.Name),
		MaxTokens:   int64(p.config.MaxTokens),
		Temperature: anthropic.Float(p.config.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	var content string
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += text.Text
		}
	}

	if content == "" {
		return "", voyanterrors.Provider("anthropic returned empty completion", nil)
	}
	return content, nil
}

func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		header := http.Header{}
		if apiErr.Response != nil {
			header = apiErr.Response.Header
		}
		return voyanterrors.ClassifyHTTP(apiErr.StatusCode, header, fmt.Errorf("anthropic generate: %w", err))
	}
	return voyanterrors.ClassifyMessage(fmt.Errorf("anthropic generate: %w", err))
}
