package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryLogEntry records one answered question, successful or not.
type QueryLogEntry struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`

	// SQL is nil when generation or sanitization failed before a statement existed.
	SQL      *string `json:"sql,omitempty"`
	RowCount int     `json:"row_count"`
	Error    *string `json:"error,omitempty"`

	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
