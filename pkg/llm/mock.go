package llm

import "context"

// MockLLMClient is a configurable mock for testing LLM-dependent code.
// Set the function fields to control behavior in tests.
type MockLLMClient struct {
	// GenerateResponseFunc is called when GenerateResponse is invoked.
	// If nil, returns an empty string and nil error.
	GenerateResponseFunc func(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Call tracking for verification
	GenerateResponseCalls int
	LastPrompt            string
	LastSystemMessage     string
	LastTemperature       float64
}

// NewMockLLMClient creates a new mock with sensible defaults.
func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{Model: "mock-model"}
}

// GenerateResponse implements LLMClient.
func (m *MockLLMClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error) {
	m.GenerateResponseCalls++
	m.LastPrompt = prompt
	m.LastSystemMessage = systemMessage
	m.LastTemperature = temperature
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage, temperature)
	}
	return "", nil
}

// GetModel implements LLMClient.
func (m *MockLLMClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// Reset clears call tracking.
func (m *MockLLMClient) Reset() {
	m.GenerateResponseCalls = 0
	m.LastPrompt = ""
	m.LastSystemMessage = ""
	m.LastTemperature = 0
}
