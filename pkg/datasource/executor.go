// Package datasource runs sanitized statements against the campaign database.
package datasource

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryResult holds the materialized output of one statement execution.
type QueryResult struct {
	Columns  []ColumnInfo
	Rows     []map[string]any
	RowCount int
}

// ColumnInfo describes one column of a result set.
type ColumnInfo struct {
	Name string
	Type string
}

// QueryRunner is the execution capability the pipeline depends on.
// Test doubles implement this interface to drive the coordinator without a
// live database.
type QueryRunner interface {
	ExecuteQuery(ctx context.Context, sqlQuery string) (*QueryResult, error)
}

// Executor runs statements on a pgx connection pool. Each call checks a
// connection out of the pool for the duration of one statement and releases
// it regardless of outcome; no two statements share a session concurrently.
type Executor struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewExecutor creates an executor over an existing pool. A zero timeout
// disables the per-statement deadline.
func NewExecutor(pool *pgxpool.Pool, timeout time.Duration) *Executor {
	return &Executor{pool: pool, timeout: timeout}
}

// ExecuteQuery runs one SQL statement and returns the materialized rows.
// Column names are taken from the result metadata in positional order and
// zipped with each row's values.
func (e *Executor) ExecuteQuery(ctx context.Context, sqlQuery string) (*QueryResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	rows, err := e.pool.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]ColumnInfo, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = ColumnInfo{
			Name: string(fd.Name),
			Type: pgTypeNameFromOID(fd.DataTypeOID),
		}
	}

	resultRows := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}

		rowMap := make(map[string]any, len(columns))
		for i, col := range columns {
			rowMap[col.Name] = values[i]
		}
		resultRows = append(resultRows, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &QueryResult{
		Columns:  columns,
		Rows:     resultRows,
		RowCount: len(resultRows),
	}, nil
}

// pgTypeNameFromOID maps common PostgreSQL type OIDs to readable names.
// campaign_data is all TEXT, but aggregates surface numeric types.
func pgTypeNameFromOID(oid uint32) string {
	switch oid {
	case 16:
		return "BOOL"
	case 20:
		return "INT8"
	case 21:
		return "INT2"
	case 23:
		return "INT4"
	case 25:
		return "TEXT"
	case 700:
		return "FLOAT4"
	case 701:
		return "FLOAT8"
	case 1042:
		return "BPCHAR"
	case 1043:
		return "VARCHAR"
	case 1082:
		return "DATE"
	case 1114:
		return "TIMESTAMP"
	case 1184:
		return "TIMESTAMPTZ"
	case 1700:
		return "NUMERIC"
	case 2950:
		return "UUID"
	case 3802:
		return "JSONB"
	default:
		return "UNKNOWN"
	}
}

// Ensure Executor implements QueryRunner at compile time.
var _ QueryRunner = (*Executor)(nil)
