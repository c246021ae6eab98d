package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errors []string
	warns  []string
}

func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.errors = append(l.errors, msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) { l.warns = append(l.warns, msg) }

func TestStandardError_IsAndUnwrap(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	err := fmt.Errorf("save draft: %w", NewStorageWriteFailedError("college_application_drafts", cause))

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, &StandardError{Code: ErrCodeStorageWriteFailed}))
	assert.False(t, stderrors.Is(err, &StandardError{Code: ErrCodeStorageReadFailed}))
	assert.True(t, HasCode(err, ErrCodeStorageWriteFailed))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAsStandardError(t *testing.T) {
	assert.Nil(t, AsStandardError(nil))

	plain := AsStandardError(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "boom", plain.Details)

	known := NewDraftNotFoundError("draft_1")
	assert.Same(t, known, AsStandardError(fmt.Errorf("wrapped: %w", known)))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeDraftNotFound:        http.StatusNotFound,
		ErrCodeFormSubmitted:        http.StatusConflict,
		ErrCodeSubmitNotAllowed:     http.StatusConflict,
		ErrCodeInvalidSection:       http.StatusBadRequest,
		ErrCodeStepValidationFailed: http.StatusUnprocessableEntity,
		ErrCodeStorageWriteFailed:   http.StatusServiceUnavailable,
		ErrCodeInternal:             http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), code)
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "STORAGE", GetErrorCategory(ErrCodeStorageReadFailed))
	assert.Equal(t, "STORAGE", GetErrorCategory(ErrCodeDraftNotFound))
	assert.Equal(t, "FORM", GetErrorCategory(ErrCodeSaveInProgress))
	assert.Equal(t, "APPLICATION", GetErrorCategory(ErrCodeInvalidStatusTransition))
	assert.Equal(t, "NOTES", GetErrorCategory(ErrCodeNoteNotFound))
	assert.Equal(t, "ASSISTANT", GetErrorCategory(ErrCodeChatFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidRequest))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestErrorHandler_HandleHTTPError(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/drafts/missing", nil)
	h.HandleHTTPError(rec, req, NewDraftNotFoundError("missing"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DRAFT_NOT_FOUND", body["error"]["code"])
	assert.Len(t, log.warns, 1)
	assert.Empty(t, log.errors)

	rec = httptest.NewRecorder()
	h.HandleHTTPError(rec, req, stderrors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, log.errors, 1)
}
