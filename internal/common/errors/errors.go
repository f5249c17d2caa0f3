// Package errors provides standardized error handling for the audit API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAuditNotFound    ErrorCode = "AUDIT_NOT_FOUND"
	ErrCodeQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	ErrCodeInvalidOption    ErrorCode = "INVALID_OPTION"
	ErrCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"

	ErrCodeAuditIncomplete       ErrorCode = "AUDIT_INCOMPLETE"
	ErrCodeAuditAlreadySubmitted ErrorCode = "AUDIT_ALREADY_SUBMITTED"
	ErrCodeAuditNotSubmitted     ErrorCode = "AUDIT_NOT_SUBMITTED"
	ErrCodeInvalidTransition     ErrorCode = "INVALID_STATE_TRANSITION"

	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeCatalogInvalid     ErrorCode = "CATALOG_INVALID"

	ErrCodeSubmissionForwardFailed ErrorCode = "SUBMISSION_FORWARD_FAILED"
	ErrCodeNotificationSendFailed  ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewAuditNotFoundError creates a non-retryable unknown-session error.
func NewAuditNotFoundError(auditID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditNotFound,
		Message:   "Audit session not found",
		Details:   fmt.Sprintf("auditId: %s", auditID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuestionNotFoundError creates a non-retryable unknown-question error.
func NewQuestionNotFoundError(questionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuestionNotFound,
		Message:   "Question not in catalog",
		Details:   fmt.Sprintf("questionId: %s", questionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidOptionError creates a non-retryable error for an answer value
// that names no option of the question.
func NewInvalidOptionError(questionID string, value int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidOption,
		Message:   "Selected value does not match any option",
		Details:   fmt.Sprintf("questionId: %s, value: %d", questionID, value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable malformed-request error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Malformed request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditIncompleteError creates a non-retryable gating error: results may
// not be computed until every question has a recorded answer.
func NewAuditIncompleteError(answered, total int) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditIncomplete,
		Message:   "All questions must be answered before submission",
		Details:   fmt.Sprintf("answered %d of %d questions", answered, total),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditAlreadySubmittedError creates a non-retryable wrong-state error.
func NewAuditAlreadySubmittedError(auditID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditAlreadySubmitted,
		Message:   "Audit has already been submitted",
		Details:   fmt.Sprintf("auditId: %s", auditID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuditNotSubmittedError creates a non-retryable wrong-state error for
// reading results before submission.
func NewAuditNotSubmittedError(auditID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuditNotSubmitted,
		Message:   "Results are not available before submission",
		Details:   fmt.Sprintf("auditId: %s", auditID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTransitionError creates a non-retryable flow-control error.
func NewInvalidTransitionError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTransition,
		Message:   "Operation not allowed in the current session state",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable store error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError creates a non-retryable catalog validation error.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Question catalog failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionForwardFailedError creates a retryable forwarding error.
// The forwarder logs this and moves on; it is never surfaced to the client.
func NewSubmissionForwardFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionForwardFailed,
		Message:   "Lead submission forwarding failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP response statuses.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeAuditNotFound:    http.StatusNotFound,
	ErrCodeQuestionNotFound: http.StatusNotFound,

	ErrCodeInvalidOption:  http.StatusBadRequest,
	ErrCodeInvalidRequest: http.StatusBadRequest,

	ErrCodeAuditIncomplete:       http.StatusConflict,
	ErrCodeAuditAlreadySubmitted: http.StatusConflict,
	ErrCodeAuditNotSubmitted:     http.StatusConflict,
	ErrCodeInvalidTransition:     http.StatusConflict,

	ErrCodeSessionStoreFailed:      http.StatusInternalServerError,
	ErrCodeCatalogInvalid:          http.StatusInternalServerError,
	ErrCodeSubmissionForwardFailed: http.StatusInternalServerError,
	ErrCodeNotificationSendFailed:  http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error; non-StandardErrors and
// unmapped codes fall back to 500.
func HTTPStatus(err error) int {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		if status, ok := HTTPStatusMapping[stdErr.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// AsStandardError extracts a StandardError, wrapping plain errors as a
// non-retryable internal error so handlers always emit a uniform envelope.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Internal error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}
