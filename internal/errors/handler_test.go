package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleAndDecode(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	handler := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()

	handler.HandleError(rec, req, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return rec.Code, doc
}

func TestHandleErrorAPIError(t *testing.T) {
	code, doc := handleAndDecode(t, ExtractionError(fmt.Errorf("no day schedules found")))

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, TypeExtraction, doc["type"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), doc["status"])
	assert.Equal(t, "EXTRACTION_FAILED", doc["error_code"])
	assert.Equal(t, "/api/sessions", doc["instance"])
	assert.Equal(t, "no day schedules found", doc["details"])
}

func TestHandleErrorUnknownError(t *testing.T) {
	code, doc := handleAndDecode(t, fmt.Errorf("something exploded"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, TypeInternal, doc["type"])
	// Internal details are never leaked.
	assert.NotContains(t, doc, "details")
}

func TestHandleErrorTimeout(t *testing.T) {
	code, doc := handleAndDecode(t, context.DeadlineExceeded)

	assert.Equal(t, http.StatusGatewayTimeout, code)
	assert.Equal(t, TypeTimeout, doc["type"])
}

func TestHandleErrorCanceled(t *testing.T) {
	code, _ := handleAndDecode(t, context.Canceled)
	assert.Equal(t, 499, code)
}

func TestErrorToProblemStatusMapping(t *testing.T) {
	handler := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	tests := []struct {
		status       int
		expectedType string
	}{
		{http.StatusBadRequest, TypeValidation},
		{http.StatusNotFound, TypeNotFound},
		{http.StatusRequestEntityTooLarge, TypePayloadSize},
		{http.StatusUnprocessableEntity, TypeExtraction},
		{http.StatusTooManyRequests, TypeRateLimit},
		{http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		problem := handler.ErrorToProblem(New(tt.status, "CODE", "message"), req)
		assert.Equal(t, tt.expectedType, problem.Type, "status %d", tt.status)
		assert.Equal(t, tt.status, problem.Status)
	}
}

func TestProblemDetailsMarshalInlinesExtensions(t *testing.T) {
	problem := NewProblem(TypeValidation, "Bad Request", http.StatusBadRequest, "invalid").
		WithExtension("trace_id", "abc-123")

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "abc-123", doc["trace_id"])
	assert.Equal(t, TypeValidation, doc["type"])
}

func TestNotFoundHandler(t *testing.T) {
	handler := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	handler.NotFound(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), TypeNotFound)
}

func TestMethodNotAllowedHandler(t *testing.T) {
	handler := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions", nil)
	rec := httptest.NewRecorder()

	handler.MethodNotAllowed(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
