package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayanth119/campaign-query-engine/pkg/database"
	"github.com/jayanth119/campaign-query-engine/pkg/models"
	"github.com/jayanth119/campaign-query-engine/pkg/testhelpers"
)

func TestQueryLogRepository(t *testing.T) {
	db := testhelpers.GetTestDB(t)
	repo := NewQueryLogRepository(&database.DB{Pool: db.Pool})
	ctx := context.Background()

	sql := "SELECT COUNT(*) FROM campaign_data;"
	entry := &models.QueryLogEntry{
		Question:   "How many people are there in the database?",
		SQL:        &sql,
		RowCount:   1,
		DurationMs: 42,
	}
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotEmpty(t, entry.ID)

	errMsg := "execution failed: relation \"nope\" does not exist"
	failed := &models.QueryLogEntry{
		Question: "broken question",
		Error:    &errMsg,
	}
	require.NoError(t, repo.Create(ctx, failed))

	entries, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)

	// Newest first.
	assert.Equal(t, "broken question", entries[0].Question)
	assert.Nil(t, entries[0].SQL)
	require.NotNil(t, entries[0].Error)
	assert.Equal(t, errMsg, *entries[0].Error)

	assert.Equal(t, "How many people are there in the database?", entries[1].Question)
	require.NotNil(t, entries[1].SQL)
	assert.Equal(t, sql, *entries[1].SQL)
	assert.Equal(t, 1, entries[1].RowCount)
	assert.Nil(t, entries[1].Error)
}
