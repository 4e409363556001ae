package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/shared/status"
)

func TestNewApiResponse(t *testing.T) {
	tests := []struct {
		name            string
		statusType      string
		message         string
		expectedType    string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "OK response",
			statusType:      status.OK,
			message:         "Server is working",
			expectedType:    status.OK,
			expectedStatus:  200,
			expectedMessage: "Server is working",
		},
		{
			name:            "created response",
			statusType:      status.Created,
			message:         "User created successfully",
			expectedType:    status.Created,
			expectedStatus:  201,
			expectedMessage: "User created successfully",
		},
		{
			name:            "empty message defaults to Success",
			statusType:      status.OK,
			message:         "",
			expectedType:    status.OK,
			expectedStatus:  200,
			expectedMessage: "Success",
		},
		{
			name:            "unknown type falls back to OK",
			statusType:      "NO_SUCH_TYPE",
			message:         "hello",
			expectedType:    status.OK,
			expectedStatus:  200,
			expectedMessage: "hello",
		},
		{
			name:            "error-category type falls back to OK",
			statusType:      status.NotFound,
			message:         "hello",
			expectedType:    status.OK,
			expectedStatus:  200,
			expectedMessage: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewApiResponse(tt.statusType, tt.message, gin.H{})

			assert.Equal(t, tt.expectedType, r.Type)
			assert.Equal(t, tt.expectedStatus, r.Status)
			assert.Equal(t, tt.expectedMessage, r.Message)
		})
	}
}

func TestApiResponse_MarshalJSON(t *testing.T) {
	r := NewApiResponse(status.OK, "Success", map[string]string{"email": "test@example.com"})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &body))

	inner, ok := body["success"]
	require.True(t, ok, "body must be wrapped in a success object")
	assert.Equal(t, "OK", inner["type"])
	assert.Equal(t, float64(200), inner["status"])
	assert.Equal(t, "Success", inner["message"])
	assert.Equal(t, map[string]any{"email": "test@example.com"}, inner["data"])
}

func TestApiResponse_MarshalJSON_Idempotent(t *testing.T) {
	r := NewApiResponse(status.Created, "User created successfully", gin.H{"id": "abc"})

	first, err := json.Marshal(r)
	require.NoError(t, err)
	second, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestApiResponse_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewApiResponse(status.Created, "User created successfully", gin.H{"id": "abc"}).Send(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User created successfully", body["success"]["message"])
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// ファクトリは構築とトランスポートを分離する
	send := Handler(status.OK, "Server is working", gin.H{})
	send(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server is working", body["success"]["message"])
}
