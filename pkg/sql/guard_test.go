package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayanth119/campaign-query-engine/pkg/apperrors"
)

func TestDetectStatementType(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected StatementType
	}{
		{
			name:     "simple SELECT",
			sql:      "SELECT * FROM campaign_data;",
			expected: StatementSelect,
		},
		{
			name:     "lowercase select",
			sql:      "select count(*) from campaign_data",
			expected: StatementSelect,
		},
		{
			name:     "leading whitespace",
			sql:      "   SELECT 1",
			expected: StatementSelect,
		},
		{
			name:     "pure CTE",
			sql:      "WITH t AS (SELECT company_name FROM campaign_data) SELECT * FROM t",
			expected: StatementSelect,
		},
		{
			name:     "modifying CTE",
			sql:      "WITH gone AS (DELETE FROM campaign_data RETURNING *) SELECT * FROM gone",
			expected: StatementUnknown,
		},
		{
			name:     "insert",
			sql:      "INSERT INTO campaign_data (query) VALUES ('x')",
			expected: StatementInsert,
		},
		{
			name:     "update",
			sql:      "UPDATE campaign_data SET query = 'x'",
			expected: StatementUpdate,
		},
		{
			name:     "delete",
			sql:      "DELETE FROM campaign_data",
			expected: StatementDelete,
		},
		{
			name:     "drop table",
			sql:      "DROP TABLE campaign_data",
			expected: StatementDDL,
		},
		{
			name:     "truncate",
			sql:      "TRUNCATE campaign_data",
			expected: StatementDDL,
		},
		{
			name:     "unrecognized",
			sql:      "EXPLAIN SELECT 1",
			expected: StatementUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectStatementType(tt.sql))
		})
	}
}

func TestGuardReadOnly(t *testing.T) {
	guard := NewGuard(GuardConfig{ReadOnly: true})

	require.NoError(t, guard.Check("SELECT COUNT(*) FROM campaign_data;"))
	require.NoError(t, guard.Check("WITH t AS (SELECT 1) SELECT * FROM t;"))

	for _, stmt := range []string{
		"DELETE FROM campaign_data;",
		"UPDATE campaign_data SET query = 'x';",
		"DROP TABLE campaign_data;",
		"INSERT INTO campaign_data (query) VALUES ('x');",
	} {
		err := guard.Check(stmt)
		require.Error(t, err, stmt)
		assert.ErrorIs(t, err, apperrors.ErrStatementBlocked)
	}
}

func TestGuardDisabled(t *testing.T) {
	guard := NewGuard(GuardConfig{})

	assert.NoError(t, guard.Check("DELETE FROM campaign_data;"))
	assert.NoError(t, guard.Check("DROP TABLE campaign_data;"))
}

func TestGuardInjectionCheck(t *testing.T) {
	guard := NewGuard(GuardConfig{InjectionCheck: true})

	require.NoError(t, guard.Check("SELECT * FROM campaign_data WHERE company_name ILIKE '%tech%';"))

	err := guard.Check("SELECT * FROM campaign_data WHERE company_name = '''; DROP TABLE campaign_data--';")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStatementBlocked)
}
