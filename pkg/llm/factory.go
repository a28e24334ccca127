package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// NewFromConfig builds the client matching cfg.Provider.
// An empty provider defaults to the OpenAI-compatible client.
func NewFromConfig(cfg *Config, logger *zap.Logger) (LLMClient, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewClient(cfg, logger)
	case "anthropic":
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
