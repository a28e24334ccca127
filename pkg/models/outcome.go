package models

// QueryOutcome is the terminal envelope returned for every answered question.
// Error is nil on success and set otherwise; Rows and Count are always present
// (empty on failure) so callers can treat every outcome uniformly.
type QueryOutcome struct {
	Question string           `json:"question"`
	SQL      *string          `json:"sql_query"`
	Rows     []map[string]any `json:"results"`
	Count    int              `json:"num_results"`
	Error    *string          `json:"error"`
}

// FailedOutcome builds an envelope for a stage failure. SQL may be nil when
// the failure happened before a statement was produced.
func FailedOutcome(question string, sql *string, errMsg string) *QueryOutcome {
	return &QueryOutcome{
		Question: question,
		SQL:      sql,
		Rows:     []map[string]any{},
		Count:    0,
		Error:    &errMsg,
	}
}

// SuccessOutcome builds an envelope for a completed query.
func SuccessOutcome(question, sql string, rows []map[string]any) *QueryOutcome {
	if rows == nil {
		rows = []map[string]any{}
	}
	return &QueryOutcome{
		Question: question,
		SQL:      &sql,
		Rows:     rows,
		Count:    len(rows),
	}
}
