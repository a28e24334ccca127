package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name:     "no literals",
			sql:      "SELECT COUNT(*) FROM campaign_data",
			expected: nil,
		},
		{
			name:     "single literal",
			sql:      "SELECT * FROM campaign_data WHERE company_country ILIKE '%united states%'",
			expected: []string{"%united states%"},
		},
		{
			name:     "multiple literals",
			sql:      "SELECT * FROM t WHERE a = 'x' AND b = 'y'",
			expected: []string{"x", "y"},
		},
		{
			name:     "doubled quote escape",
			sql:      "SELECT * FROM t WHERE name = 'O''Brien'",
			expected: []string{"O'Brien"},
		},
		{
			name:     "empty literal",
			sql:      "SELECT * FROM t WHERE a = ''",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractStringLiterals(tt.sql))
		})
	}
}

func TestCheckLiterals(t *testing.T) {
	// Ordinary pattern-matching literals are clean.
	assert.Empty(t, CheckLiterals("SELECT * FROM campaign_data WHERE company_name ILIKE '%tech%'"))
	assert.Empty(t, CheckLiterals("SELECT * FROM campaign_data WHERE person_headline ILIKE '%ceo%' LIMIT 10"))

	// A literal carrying a breakout attempt is flagged.
	results := CheckLiterals("SELECT * FROM t WHERE name = '''; DROP TABLE campaign_data--'")
	require.NotEmpty(t, results)
	assert.NotEmpty(t, results[0].Fingerprint)
}
