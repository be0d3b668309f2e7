package llm

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// constructor builds a provider client from config.
type constructor func(cfg *Config, logger *zap.Logger) (Client, error)

// providers maps a configuration string to its constructor. The table is
// static: provider selection happens once at startup, no runtime plugin
// loading.
var providers = map[string]constructor{
	ProviderOpenAI: func(cfg *Config, logger *zap.Logger) (Client, error) {
		return NewOpenAIClient(cfg, logger)
	},
	ProviderGroq: func(cfg *Config, logger *zap.Logger) (Client, error) {
		return NewOpenAIClient(cfg, logger)
	},
	ProviderAnthropic: func(cfg *Config, logger *zap.Logger) (Client, error) {
		return NewAnthropicClient(cfg, logger)
	},
}

// NewClient creates a provider client for the configured provider name.
// Unknown names fail with the list of supported providers.
func NewClient(cfg *Config, logger *zap.Logger) (Client, error) {
	build, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider %q (supported: %v)", cfg.Provider, SupportedProviders())
	}
	return build(cfg, logger)
}

// SupportedProviders returns the provider names the factory can build.
func SupportedProviders() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
