package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jayanth119/campaign-query-engine/pkg/database"
	"github.com/jayanth119/campaign-query-engine/pkg/models"
)

// QueryLogRepository provides data access for the query log.
type QueryLogRepository interface {
	Create(ctx context.Context, entry *models.QueryLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*models.QueryLogEntry, error)
}

type queryLogRepository struct {
	db *database.DB
}

// NewQueryLogRepository creates a query log repository over the engine database.
func NewQueryLogRepository(db *database.DB) QueryLogRepository {
	return &queryLogRepository{db: db}
}

var _ QueryLogRepository = (*queryLogRepository)(nil)

func (r *queryLogRepository) Create(ctx context.Context, entry *models.QueryLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	query := `
		INSERT INTO query_log (id, question, sql_query, row_count, error, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.Question,
		entry.SQL,
		entry.RowCount,
		entry.Error,
		entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to create query log entry: %w", err)
	}

	return nil
}

func (r *queryLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.QueryLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, question, sql_query, row_count, error, duration_ms, created_at
		FROM query_log
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list query log entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.QueryLogEntry
	for rows.Next() {
		entry := &models.QueryLogEntry{}
		if err := rows.Scan(
			&entry.ID,
			&entry.Question,
			&entry.SQL,
			&entry.RowCount,
			&entry.Error,
			&entry.DurationMs,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan query log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query log entries: %w", err)
	}

	return entries, nil
}
