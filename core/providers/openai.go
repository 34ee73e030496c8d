package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	voyanterrors "github.com/adalundhe/voyant/core/errors"
)

// OpenAIProvider backs responders with GPT models.
type OpenAIProvider struct {
	client *openai.Client
	config ModelConfig
}

// NewOpenAIProvider creates a GPT-backed provider.
func NewOpenAIProvider(config ModelConfig, apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not configured")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{client: &client, config: config}, nil
}

func (p *OpenAIProvider) Name() string {
	return string(ProviderTypeOpenAI)
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.config.Name),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxCompletionTokens: openai.Int(int64(p.config.MaxTokens)),
		Temperature:         openai.Float(p.config.Temperature),
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", voyanterrors.Provider("openai returned empty completion", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		header := http.Header{}
		if apiErr.Response != nil {
			header = apiErr.Response.Header
		}
		return voyanterrors.ClassifyHTTP(apiErr.StatusCode, header, fmt.Errorf("openai generate: %w", err))
	}
	return voyanterrors.ClassifyMessage(fmt.Errorf("openai generate: %w", err))
}
