package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	voyanterrors "github.com/adalundhe/voyant/core/errors"
)

// GeminiProvider backs responders with Google's Gemini models. This is the
// default provider family, matching the shipped configuration.
type GeminiProvider struct {
	client *genai.Client
	config ModelConfig
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(ctx context.Context, config ModelConfig, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &GeminiProvider{client: client, config: config}, nil
}

func (p *GeminiProvider) Name() string {
	return string(ProviderTypeGoogle)
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.config.Name,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(p.config.Temperature)),
			TopP:            genai.Ptr(float32(0.8)),
			TopK:            genai.Ptr(float32(40)),
			MaxOutputTokens: int32(p.config.MaxTokens),
		},
	)
	if err != nil {
		return "", voyanterrors.ClassifyMessage(fmt.Errorf("gemini generate: %w", err))
	}

	text := resp.Text()
	if text == "" {
		return "", voyanterrors.Provider("gemini returned empty completion", nil)
	}
	return text, nil
}
