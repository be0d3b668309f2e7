// Package llm provides provider clients for requirement interpretation.
package llm

import (
	"context"
	"time"
)

// Client is the interface every provider implements. Use it for dependency
// injection to enable mocking in tests.
type Client interface {
	// Complete generates a single completion for the given system and user
	// prompts.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Model returns the configured model name.
	Model() string

	// Provider returns the provider name the client was built for.
	Provider() string
}

// Config holds configuration for creating a provider client.
type Config struct {
	Provider    string        // "openai", "groq" or "anthropic"
	Model       string        // Model name, e.g. "gpt-4o-mini"
	BaseURL     string        // Optional override for OpenAI-compatible endpoints
	APIKey      string        // Required by hosted providers
	Temperature float64       // Sampling temperature
	MaxTokens   int           // Response token cap
	Timeout     time.Duration // Per-request timeout; the client owns this
}
