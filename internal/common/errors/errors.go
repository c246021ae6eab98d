// Package errors provides the portal's structured error taxonomy.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

// Storage errors
const (
	ErrCodeStorageReadFailed  ErrorCode = "STORAGE_READ_FAILED"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"
	ErrCodeDraftNotFound      ErrorCode = "DRAFT_NOT_FOUND"
)

// Form errors
const (
	ErrCodeSaveInProgress          ErrorCode = "SAVE_IN_PROGRESS"
	ErrCodeSubmitNotAllowed        ErrorCode = "SUBMIT_NOT_ALLOWED"
	ErrCodeFormSubmitted           ErrorCode = "FORM_SUBMITTED"
	ErrCodeFormNotFound            ErrorCode = "FORM_NOT_FOUND"
	ErrCodeInvalidSection          ErrorCode = "INVALID_SECTION"
	ErrCodeInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrCodeApplicationNotFound     ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeStepValidationFailed    ErrorCode = "STEP_VALIDATION_FAILED"
)

// Feature errors
const (
	ErrCodeNoteNotFound   ErrorCode = "NOTE_NOT_FOUND"
	ErrCodeVideoNotFound  ErrorCode = "VIDEO_NOT_FOUND"
	ErrCodeInvalidNote    ErrorCode = "INVALID_NOTE"
	ErrCodeChatFailed     ErrorCode = "CHAT_FAILED"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

// StandardError is a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// Is matches another StandardError by code.
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewStorageReadFailedError wraps a failure to read or decode a storage key.
func NewStorageReadFailedError(key string, err error) *StandardError {
	return newError(ErrCodeStorageReadFailed, "Failed to read from storage",
		fmt.Sprintf("key: %s, error: %v", key, err), err)
}

// NewStorageWriteFailedError wraps a failure to encode or write a storage key.
func NewStorageWriteFailedError(key string, err error) *StandardError {
	return newError(ErrCodeStorageWriteFailed, "Failed to save to storage",
		fmt.Sprintf("key: %s, error: %v", key, err), err)
}

func NewDraftNotFoundError(id string) *StandardError {
	return newError(ErrCodeDraftNotFound, "Draft not found", fmt.Sprintf("draftId: %s", id), nil)
}

func NewSaveInProgressError() *StandardError {
	return newError(ErrCodeSaveInProgress, "A draft save is already in progress", "", nil)
}

func NewSubmitNotAllowedError(step int) *StandardError {
	return newError(ErrCodeSubmitNotAllowed, "Application can only be submitted from the review step",
		fmt.Sprintf("currentStep: %d", step), nil)
}

func NewFormSubmittedError() *StandardError {
	return newError(ErrCodeFormSubmitted, "Application has already been submitted", "", nil)
}

func NewFormNotFoundError(id string) *StandardError {
	return newError(ErrCodeFormNotFound, "Form not found", fmt.Sprintf("formId: %s", id), nil)
}

func NewInvalidSectionError(section, details string) *StandardError {
	return newError(ErrCodeInvalidSection, fmt.Sprintf("Invalid form section '%s'", section), details, nil)
}

func NewInvalidStatusTransitionError(from, to string) *StandardError {
	return newError(ErrCodeInvalidStatusTransition, "Status transition not allowed",
		fmt.Sprintf("from: %s, to: %s", from, to), nil)
}

func NewApplicationNotFoundError(id string) *StandardError {
	return newError(ErrCodeApplicationNotFound, "Application not found", fmt.Sprintf("applicationId: %s", id), nil)
}

func NewStepValidationFailedError(step, count int) *StandardError {
	return newError(ErrCodeStepValidationFailed, "Step validation failed",
		fmt.Sprintf("step: %d, errors: %d", step, count), nil)
}

func NewNoteNotFoundError(videoID, noteID string) *StandardError {
	return newError(ErrCodeNoteNotFound, "Note not found",
		fmt.Sprintf("videoId: %s, noteId: %s", videoID, noteID), nil)
}

func NewVideoNotFoundError(videoID string) *StandardError {
	return newError(ErrCodeVideoNotFound, "Video not found", fmt.Sprintf("videoId: %s", videoID), nil)
}

func NewInvalidNoteError(details string) *StandardError {
	return newError(ErrCodeInvalidNote, "Invalid note", details, nil)
}

func NewChatFailedError(err error) *StandardError {
	return newError(ErrCodeChatFailed, "Assistant could not respond", err.Error(), err)
}

func NewInvalidRequestError(details string) *StandardError {
	return newError(ErrCodeInvalidRequest, "Invalid request", details, nil)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), err)
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError unwraps err into a StandardError, converting unknown errors
// into INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// HTTPStatus maps an error code to the status the API answers with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeDraftNotFound, ErrCodeFormNotFound, ErrCodeNoteNotFound, ErrCodeVideoNotFound, ErrCodeApplicationNotFound:
		return http.StatusNotFound
	case ErrCodeSaveInProgress, ErrCodeFormSubmitted, ErrCodeSubmitNotAllowed, ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case ErrCodeInvalidSection, ErrCodeInvalidNote, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeStepValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeStorageReadFailed, ErrCodeStorageWriteFailed:
		return http.StatusServiceUnavailable
	case ErrCodeChatFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorCategory groups codes for logging.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "STORAGE") || strings.HasPrefix(codeStr, "DRAFT"):
		return "STORAGE"
	case strings.Contains(codeStr, "FORM") || strings.Contains(codeStr, "SUBMIT") ||
		strings.Contains(codeStr, "SAVE") || strings.Contains(codeStr, "STEP") ||
		strings.Contains(codeStr, "SECTION"):
		return "FORM"
	case strings.Contains(codeStr, "STATUS") || strings.Contains(codeStr, "APPLICATION"):
		return "APPLICATION"
	case strings.Contains(codeStr, "NOTE") || strings.Contains(codeStr, "VIDEO"):
		return "NOTES"
	case strings.Contains(codeStr, "CHAT"):
		return "ASSISTANT"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
