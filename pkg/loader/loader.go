// Package loader performs the one-shot spreadsheet ingest into campaign_data.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/models"
)

// Loader copies spreadsheet rows into the campaign_data table. It is a plain
// ETL pass: no retries, no consistency logic beyond one transaction.
type Loader struct {
	db     *sql.DB
	schema *models.SchemaDescriptor
	logger *zap.Logger
}

// New creates a loader writing through the given database handle.
func New(db *sql.DB, logger *zap.Logger) *Loader {
	return &Loader{
		db:     db,
		schema: models.CampaignDataSchema(),
		logger: logger,
	}
}

// LoadFile reads the spreadsheet at path and inserts its rows.
// Returns the number of rows inserted.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			l.logger.Warn("Failed to close spreadsheet", zap.Error(err))
		}
	}()

	return l.Load(ctx, f)
}

// Load inserts every data row of the workbook's first sheet. The header row
// maps spreadsheet columns to table columns by name; columns absent from the
// sheet and blank cells become NULL.
func (l *Loader) Load(ctx context.Context, f *excelize.File) (int, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	header := headerIndex(rows[0])
	for _, col := range l.schema.Columns {
		if _, ok := header[col.Name]; !ok {
			l.logger.Warn("Spreadsheet missing column, inserting NULLs", zap.String("column", col.Name))
		}
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, l.insertStatement())
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, row := range rows[1:] {
		values := make([]any, len(l.schema.Columns))
		for i, col := range l.schema.Columns {
			values[i] = cellValue(row, header, col.Name)
		}

		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return inserted, fmt.Errorf("failed to insert row %d: %w", inserted+2, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, fmt.Errorf("failed to commit: %w", err)
	}

	l.logger.Info("Loaded campaign data", zap.Int("rows", inserted))
	return inserted, nil
}

func (l *Loader) insertStatement() string {
	names := make([]string, len(l.schema.Columns))
	placeholders := make([]string, len(l.schema.Columns))
	for i, col := range l.schema.Columns {
		names[i] = col.Name
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		l.schema.TableName,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "))
}

// headerIndex maps trimmed header names to their column positions.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name != "" {
			index[name] = i
		}
	}
	return index
}

// cellValue returns the cell for the named column, or nil for missing or
// blank cells so they land as SQL NULL.
func cellValue(row []string, header map[string]int, column string) any {
	i, ok := header[column]
	if !ok || i >= len(row) {
		return nil
	}
	value := strings.TrimSpace(row[i])
	if value == "" {
		return nil
	}
	return value
}
