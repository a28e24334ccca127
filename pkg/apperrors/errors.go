package apperrors

import "errors"

var (
	// ErrEmptyCompletion indicates the model call succeeded but returned no usable text.
	ErrEmptyCompletion = errors.New("model returned empty completion")
	// ErrEmptySQL indicates sanitization of the model output produced an empty statement.
	ErrEmptySQL = errors.New("sanitized SQL is empty")
	// ErrStatementBlocked indicates the guard refused to execute the statement.
	ErrStatementBlocked = errors.New("statement blocked by guard")
)
