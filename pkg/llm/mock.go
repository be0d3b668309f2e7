package llm

import "context"

// MockClient is a configurable mock for testing LLM-dependent code.
// Set the function field to control behavior in tests.
type MockClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, returns an empty string and nil error.
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// ProviderName is returned by Provider. Defaults to "mock".
	ProviderName string

	// Call tracking for verification
	CompleteCalls int
	LastSystem    string
	LastPrompt    string
}

// NewMockClient creates a new mock with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		ModelName:    "mock-model",
		ProviderName: "mock",
	}
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.CompleteCalls++
	m.LastSystem = systemPrompt
	m.LastPrompt = userPrompt
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt)
	}
	return "", nil
}

// Model implements Client.
func (m *MockClient) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// Provider implements Client.
func (m *MockClient) Provider() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Ensure MockClient implements Client at compile time.
var _ Client = (*MockClient)(nil)
