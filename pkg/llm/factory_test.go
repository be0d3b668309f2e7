package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClient_OpenAI(t *testing.T) {
	client, err := NewClient(&Config{
		Provider: ProviderOpenAI,
		Model:    "gpt-4o-mini",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", client.Model())
	assert.Equal(t, ProviderOpenAI, client.Provider())
}

func TestNewClient_Groq(t *testing.T) {
	client, err := NewClient(&Config{
		Provider: ProviderGroq,
		Model:    "llama-3.3-70b-versatile",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ProviderGroq, client.Provider())
}

func TestNewClient_Anthropic(t *testing.T) {
	client, err := NewClient(&Config{
		Provider: ProviderAnthropic,
		Model:    "claude-sonnet-4-5",
		APIKey:   "test-key",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, client.Provider())
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(&Config{Provider: "bedrock", Model: "m", APIKey: "k"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	_, err := NewClient(&Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini"}, zap.NewNop())
	require.Error(t, err)
}

func TestNewClient_MissingModel(t *testing.T) {
	_, err := NewClient(&Config{Provider: ProviderAnthropic, APIKey: "k"}, zap.NewNop())
	require.Error(t, err)
}

func TestSupportedProviders(t *testing.T) {
	assert.Equal(t, []string{ProviderAnthropic, ProviderGroq, ProviderOpenAI}, SupportedProviders())
}
