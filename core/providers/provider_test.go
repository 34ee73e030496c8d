package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedModels(t *testing.T) {
	gemini, ok := SupportedModels["gemini"]
	require.True(t, ok)
	assert.Equal(t, ProviderTypeGoogle, gemini.Provider)
	assert.Equal(t, 1024, gemini.MaxTokens)

	claude, ok := SupportedModels["claude"]
	require.True(t, ok)
	assert.Equal(t, ProviderTypeAnthropic, claude.Provider)

	gpt, ok := SupportedModels["gpt4"]
	require.True(t, ok)
	assert.Equal(t, ProviderTypeOpenAI, gpt.Provider)
}

func TestNew_UnsupportedModel(t *testing.T) {
	_, err := New(context.Background(), "llama", Credentials{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model type")
}

func TestNew_MissingCredentials(t *testing.T) {
	cases := []string{"gemini", "claude", "gpt4"}

	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := New(context.Background(), key, Credentials{})
			assert.Error(t, err)
		})
	}
}

func TestNew_DefaultsToGemini(t *testing.T) {
	_, err := New(context.Background(), "", Credentials{})

	// No key configured, but the failure names the Gemini credential,
	// proving the default family was selected.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
