// Package llm provides clients for OpenAI-compatible and Anthropic endpoints.
package llm

import "context"

// LLMClient defines the text-completion capability the pipeline depends on.
// Use this interface for dependency injection to enable mocking in tests.
type LLMClient interface {
	// GenerateResponse generates a single chat completion.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string
}

// Ensure implementations satisfy LLMClient at compile time.
var (
	_ LLMClient = (*Client)(nil)
	_ LLMClient = (*AnthropicClient)(nil)
	_ LLMClient = (*MockLLMClient)(nil)
)
