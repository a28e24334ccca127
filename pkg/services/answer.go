package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/datasource"
	"github.com/jayanth119/campaign-query-engine/pkg/models"
	"github.com/jayanth119/campaign-query-engine/pkg/repositories"
	enginesql "github.com/jayanth119/campaign-query-engine/pkg/sql"
)

// AnswerService answers natural-language questions against campaign_data.
type AnswerService interface {
	// Answer runs the generate -> sanitize -> execute pipeline. It always
	// returns a well-formed outcome; stage failures populate the error field
	// and never cross the boundary as a Go error.
	Answer(ctx context.Context, question string) *models.QueryOutcome
}

type answerService struct {
	generator *SQLGenerator
	guard     *enginesql.Guard
	runner    datasource.QueryRunner
	queryLog  repositories.QueryLogRepository // optional; nil disables logging
	logger    *zap.Logger
}

// NewAnswerService wires the pipeline stages. queryLog may be nil.
func NewAnswerService(
	generator *SQLGenerator,
	guard *enginesql.Guard,
	runner datasource.QueryRunner,
	queryLog repositories.QueryLogRepository,
	logger *zap.Logger,
) AnswerService {
	return &answerService{
		generator: generator,
		guard:     guard,
		runner:    runner,
		queryLog:  queryLog,
		logger:    logger,
	}
}

// Answer implements the three-stage pipeline. Each stage gates the next:
// a generation or sanitization failure leaves SQL nil and the executor is
// never invoked; an execution failure carries the sanitized SQL so callers
// can see what was attempted. The service itself is stateless, so calls may
// run concurrently; the pool below guarantees one statement per session.
func (s *answerService) Answer(ctx context.Context, question string) *models.QueryOutcome {
	start := time.Now()

	raw, err := s.generator.Generate(ctx, question)
	if err != nil {
		s.logger.Warn("Generation failed", zap.String("question", question), zap.Error(err))
		return s.record(ctx, start, models.FailedOutcome(question, nil, fmt.Sprintf("generation failed: %v", err)))
	}

	stmt, err := enginesql.Sanitize(raw)
	if err != nil {
		s.logger.Warn("Sanitization failed", zap.String("question", question), zap.Error(err))
		return s.record(ctx, start, models.FailedOutcome(question, nil, fmt.Sprintf("sanitization failed: %v", err)))
	}

	if s.guard != nil {
		if err := s.guard.Check(stmt); err != nil {
			s.logger.Warn("Statement blocked",
				zap.String("question", question),
				zap.String("sql", stmt),
				zap.Error(err))
			return s.record(ctx, start, models.FailedOutcome(question, &stmt, fmt.Sprintf("execution failed: %v", err)))
		}
	}

	result, err := s.runner.ExecuteQuery(ctx, stmt)
	if err != nil {
		s.logger.Warn("Execution failed",
			zap.String("question", question),
			zap.String("sql", stmt),
			zap.Error(err))
		return s.record(ctx, start, models.FailedOutcome(question, &stmt, fmt.Sprintf("execution failed: %v", err)))
	}

	s.logger.Info("Answered question",
		zap.String("question", question),
		zap.String("sql", stmt),
		zap.Int("rows", result.RowCount),
		zap.Duration("elapsed", time.Since(start)))

	return s.record(ctx, start, models.SuccessOutcome(question, stmt, result.Rows))
}

// record persists the outcome to the query log when one is configured.
// Logging failures are reported but never alter the outcome.
func (s *answerService) record(ctx context.Context, start time.Time, outcome *models.QueryOutcome) *models.QueryOutcome {
	if s.queryLog == nil {
		return outcome
	}

	entry := &models.QueryLogEntry{
		Question:   outcome.Question,
		SQL:        outcome.SQL,
		RowCount:   outcome.Count,
		Error:      outcome.Error,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err := s.queryLog.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to record query log entry", zap.Error(err))
	}

	return outcome
}
