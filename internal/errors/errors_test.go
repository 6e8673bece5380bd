package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", err.ErrorCode)
}

func TestNewWithDetails(t *testing.T) {
	err := NewWithDetails(http.StatusNotFound, "NOT_FOUND", "missing", "schedule.json")
	assert.Equal(t, "schedule.json", err.Details)
}

func TestErrValidation(t *testing.T) {
	err := ErrValidation("file", "timetable file is required")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	details, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "file", details.Field)
}

func TestExtractionError(t *testing.T) {
	err := ExtractionError(fmt.Errorf("no day schedules found"))
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.Equal(t, "EXTRACTION_FAILED", err.ErrorCode)
	assert.Equal(t, "no day schedules found", err.Details)
}

func TestAPIErrorWorksWithErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrNotFound)

	var apiErr *APIError
	require.True(t, stderrors.As(wrapped, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
