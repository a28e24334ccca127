package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult describes an injection pattern found in a SQL literal.
type InjectionCheckResult struct {
	Fingerprint string // libinjection fingerprint of the detected pattern
	Literal     string // the literal content that tripped the check
}

// CheckLiterals extracts the single-quoted string literals from a statement
// and screens each with libinjection. Model-produced literals are the only
// part of the statement that carries user-influenced free text, so they are
// the screening surface.
//
// Returns one result per flagged literal; empty when all literals are clean.
func CheckLiterals(sqlQuery string) []InjectionCheckResult {
	var results []InjectionCheckResult
	for _, literal := range extractStringLiterals(sqlQuery) {
		isSQLi, fingerprint := libinjection.IsSQLi(literal)
		if isSQLi {
			results = append(results, InjectionCheckResult{
				Fingerprint: string(fingerprint),
				Literal:     literal,
			})
		}
	}
	return results
}

// extractStringLiterals returns the contents of single-quoted literals,
// honoring the SQL standard '' escape.
func extractStringLiterals(sqlQuery string) []string {
	var literals []string
	runes := []rune(sqlQuery)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '\'' {
			continue
		}

		var current []rune
		i++
		for i < len(runes) {
			if runes[i] == '\'' {
				if i+1 < len(runes) && runes[i+1] == '\'' {
					current = append(current, '\'')
					i += 2
					continue
				}
				break
			}
			current = append(current, runes[i])
			i++
		}
		literals = append(literals, string(current))
	}

	return literals
}
