// Package sql provides cleanup and safety checks for model-generated SQL.
package sql

import (
	"regexp"
	"strings"

	"github.com/jayanth119/campaign-query-engine/pkg/apperrors"
)

// fencePattern matches triple-backtick fence markers, with or without a
// language tag, anywhere in the text.
var fencePattern = regexp.MustCompile("```[a-zA-Z]*")

// Sanitize normalizes a raw model completion into a single executable SQL
// statement. It is a pure function of the input:
//
//  1. Trim surrounding whitespace.
//  2. If the text begins with a code fence, strip all fence markers.
//  3. Drop lines that are empty or comment-only (# or --) after trimming,
//     and join the survivors with single spaces.
//  4. Append a trailing semicolon when missing.
//
// A completion that reduces to nothing before step 4 fails with
// apperrors.ErrEmptySQL rather than becoming a bare ";".
//
// Sanitize is deliberately statement-agnostic: multiple statements
// concatenated by the model are forwarded as-is, not split or rejected.
func Sanitize(raw string) (string, error) {
	query := strings.TrimSpace(raw)

	if strings.HasPrefix(query, "```") {
		query = fencePattern.ReplaceAllString(query, "")
	}

	var kept []string
	for _, line := range strings.Split(query, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "--") {
			continue
		}
		kept = append(kept, line)
	}
	query = strings.Join(kept, " ")

	if query == "" {
		return "", apperrors.ErrEmptySQL
	}

	if !strings.HasSuffix(query, ";") {
		query += ";"
	}

	return query, nil
}
