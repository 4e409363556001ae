package response

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/shared/status"
)

func TestNewApiError(t *testing.T) {
	tests := []struct {
		name           string
		errType        string
		message        string
		expectedType   string
		expectedStatus int
	}{
		{
			name:           "conflict error",
			errType:        status.Conflict,
			message:        "Username or email already exists",
			expectedType:   status.Conflict,
			expectedStatus: 409,
		},
		{
			name:           "validation error",
			errType:        status.BadRequest,
			message:        "email must be a valid email address",
			expectedType:   status.BadRequest,
			expectedStatus: 400,
		},
		{
			name:           "unauthorized error",
			errType:        status.Unauthorized,
			message:        "Invalid email or password",
			expectedType:   status.Unauthorized,
			expectedStatus: 401,
		},
		{
			name:           "unknown type coerces to internal server error",
			errType:        "NO_SUCH_TYPE",
			message:        "something broke",
			expectedType:   status.InternalServerError,
			expectedStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewApiError(tt.errType, tt.message)

			assert.Equal(t, tt.expectedType, apiErr.Type)
			assert.Equal(t, tt.expectedStatus, apiErr.Status)
			assert.Equal(t, tt.expectedType, apiErr.Title, "title mirrors the resolved type")
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}
}

func TestNewApiError_DetailIsNotSerialized(t *testing.T) {
	// 詳細はログ専用であり、レスポンスボディに現れてはならない
	apiErr := NewApiError(status.InternalServerError, "An unexpected error occurred", errors.New("connection refused"))

	data, err := json.Marshal(apiErr)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "connection refused")
}

func TestApiError_MarshalJSON(t *testing.T) {
	apiErr := NewApiError(status.NotFound, "User with email a@b.com not found")

	data, err := json.Marshal(apiErr)
	require.NoError(t, err)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	inner, ok := body["error"]
	require.True(t, ok, "body must be wrapped in an error object")
	assert.Equal(t, "NOT_FOUND", inner["type"])
	assert.Equal(t, float64(404), inner["status"])
	assert.Equal(t, "NOT_FOUND", inner["title"])
	assert.Equal(t, "User with email a@b.com not found", inner["message"])
}

func TestApiError_MarshalJSON_Idempotent(t *testing.T) {
	apiErr := NewApiError(status.Conflict, "Username or email already exists")

	first, err := json.Marshal(apiErr)
	require.NoError(t, err)
	second, err := json.Marshal(apiErr)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
