package sql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jayanth119/campaign-query-engine/pkg/apperrors"
)

// StatementType classifies a SQL statement by its leading keyword.
type StatementType string

const (
	StatementSelect  StatementType = "SELECT"
	StatementInsert  StatementType = "INSERT"
	StatementUpdate  StatementType = "UPDATE"
	StatementDelete  StatementType = "DELETE"
	StatementDDL     StatementType = "DDL"
	StatementUnknown StatementType = "UNKNOWN"
)

// modifyingCTEPattern matches CTEs that contain data-modifying operations,
// e.g. WITH deleted AS (DELETE FROM ...) SELECT * FROM deleted.
var modifyingCTEPattern = regexp.MustCompile(`(?i)\bAS\s*\(\s*(INSERT|UPDATE|DELETE)\b`)

// DetectStatementType determines the statement type from the first keyword.
func DetectStatementType(sqlQuery string) StatementType {
	normalized := strings.ToUpper(strings.TrimSpace(sqlQuery))

	switch {
	case strings.HasPrefix(normalized, "SELECT"):
		return StatementSelect

	case strings.HasPrefix(normalized, "WITH"):
		if modifyingCTEPattern.MatchString(sqlQuery) {
			return StatementUnknown
		}
		return StatementSelect

	case strings.HasPrefix(normalized, "INSERT"):
		return StatementInsert

	case strings.HasPrefix(normalized, "UPDATE"):
		return StatementUpdate

	case strings.HasPrefix(normalized, "DELETE"):
		return StatementDelete

	case strings.HasPrefix(normalized, "CREATE"),
		strings.HasPrefix(normalized, "ALTER"),
		strings.HasPrefix(normalized, "DROP"),
		strings.HasPrefix(normalized, "TRUNCATE"):
		return StatementDDL

	default:
		return StatementUnknown
	}
}

// GuardConfig controls which checks the guard applies.
type GuardConfig struct {
	// ReadOnly restricts execution to SELECT statements (including pure CTEs).
	ReadOnly bool
	// InjectionCheck screens string literals in the statement with libinjection.
	InjectionCheck bool
}

// Guard is the pre-execution gate between the sanitizer and the executor.
type Guard struct {
	cfg GuardConfig
}

// NewGuard creates a guard with the given configuration.
func NewGuard(cfg GuardConfig) *Guard {
	return &Guard{cfg: cfg}
}

// Check returns nil when the statement may be executed. A refusal wraps
// apperrors.ErrStatementBlocked so callers can classify it with errors.Is.
func (g *Guard) Check(sqlQuery string) error {
	if g.cfg.ReadOnly {
		if t := DetectStatementType(sqlQuery); t != StatementSelect {
			return fmt.Errorf("%w: %s statement not allowed in read-only mode", apperrors.ErrStatementBlocked, t)
		}
	}

	if g.cfg.InjectionCheck {
		for _, result := range CheckLiterals(sqlQuery) {
			return fmt.Errorf("%w: injection pattern %q in literal", apperrors.ErrStatementBlocked, result.Fingerprint)
		}
	}

	return nil
}
