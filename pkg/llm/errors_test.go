package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedType  ErrorType
		expectedRetry bool
	}{
		{
			name:          "nil error",
			err:           nil,
			expectedType:  "",
			expectedRetry: false,
		},
		{
			name:          "unauthorized",
			err:           errors.New("status code 401 Unauthorized"),
			expectedType:  ErrorTypeAuth,
			expectedRetry: false,
		},
		{
			name:          "invalid api key",
			err:           errors.New("invalid API key provided"),
			expectedType:  ErrorTypeAuth,
			expectedRetry: false,
		},
		{
			name:          "model not found",
			err:           errors.New("model gpt-99 does not exist"),
			expectedType:  ErrorTypeModel,
			expectedRetry: false,
		},
		{
			name:          "endpoint 404",
			err:           errors.New("unexpected status 404"),
			expectedType:  ErrorTypeEndpoint,
			expectedRetry: false,
		},
		{
			name:          "connection refused",
			err:           errors.New("dial tcp 127.0.0.1:8000: connection refused"),
			expectedType:  ErrorTypeEndpoint,
			expectedRetry: true,
		},
		{
			name:          "deadline exceeded",
			err:           errors.New("context deadline exceeded"),
			expectedType:  ErrorTypeEndpoint,
			expectedRetry: true,
		},
		{
			name:          "rate limited",
			err:           errors.New("429 rate limit reached"),
			expectedType:  ErrorTypeUnknown,
			expectedRetry: true,
		},
		{
			name:          "server error",
			err:           errors.New("received 503 from upstream"),
			expectedType:  ErrorTypeEndpoint,
			expectedRetry: true,
		},
		{
			name:          "unknown",
			err:           errors.New("something odd happened"),
			expectedType:  ErrorTypeUnknown,
			expectedRetry: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			if tt.err == nil {
				assert.Nil(t, classified)
				return
			}

			require.NotNil(t, classified)
			assert.Equal(t, tt.expectedType, classified.Type)
			assert.Equal(t, tt.expectedRetry, classified.Retryable)
			assert.Equal(t, tt.err, classified.Cause)
		})
	}
}

func TestClassifyErrorPassesThroughStructured(t *testing.T) {
	original := NewError(ErrorTypeAuth, "authentication failed", false, errors.New("401"))
	wrapped := fmt.Errorf("call failed: %w", original)

	assert.Same(t, original, ClassifyError(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := NewError(ErrorTypeEndpoint, "server error", true, errors.New("boom"))
	err.StatusCode = 503

	msg := err.Error()
	assert.Contains(t, msg, "endpoint")
	assert.Contains(t, msg, "HTTP 503")
	assert.Contains(t, msg, "server error")
	assert.Contains(t, msg, "boom")
}

func TestIsRetryable(t *testing.T) {
	retryable := fmt.Errorf("wrapped: %w", NewError(ErrorTypeEndpoint, "connection failed", true, nil))
	assert.True(t, IsRetryable(retryable))
	assert.False(t, IsRetryable(errors.New("plain error")))
}

func TestGetErrorType(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError(ErrorTypeModel, "model not found", false, nil))
	assert.Equal(t, ErrorTypeModel, GetErrorType(err))
	assert.Equal(t, ErrorTypeUnknown, GetErrorType(errors.New("plain")))
}
