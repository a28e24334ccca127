package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/apperrors"
	"github.com/jayanth119/campaign-query-engine/pkg/llm"
	"github.com/jayanth119/campaign-query-engine/pkg/models"
	"github.com/jayanth119/campaign-query-engine/pkg/prompts"
)

// SQLGenerator turns a natural-language question into raw model output.
// The schema descriptor is fixed for the deployment; only the question varies.
type SQLGenerator struct {
	client      llm.LLMClient
	schema      *models.SchemaDescriptor
	temperature float64
	logger      *zap.Logger
}

// NewSQLGenerator creates a generator bound to one schema and one model client.
// Temperature is kept low so repeated questions tend toward the same SQL;
// exact determinism is not guaranteed.
func NewSQLGenerator(client llm.LLMClient, schema *models.SchemaDescriptor, temperature float64, logger *zap.Logger) *SQLGenerator {
	return &SQLGenerator{
		client:      client,
		schema:      schema,
		temperature: temperature,
		logger:      logger,
	}
}

// Generate performs one model call and returns the raw completion text.
// It fails when the question is blank, the call errors, or the completion is
// empty or whitespace-only. No retries; a failed call surfaces immediately.
func (g *SQLGenerator) Generate(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is required")
	}

	prompt := prompts.BuildTextToSQLPrompt(g.schema.Describe(), question)

	raw, err := g.client.GenerateResponse(ctx, prompt, prompts.SystemMessage, g.temperature)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	if strings.TrimSpace(raw) == "" {
		return "", apperrors.ErrEmptyCompletion
	}

	g.logger.Debug("Generated completion",
		zap.String("model", g.client.GetModel()),
		zap.Int("completion_len", len(raw)))

	return raw, nil
}
