package apperrors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type. Exactly one AppError is
// ever active per request; it is the sole vehicle carrying failure
// information to the response boundary.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"errorCode"`
	// Message is a human-readable error message safe to show clients.
	Message string `json:"message"`
	// Retryable indicates if resubmitting the request may succeed.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, logged but never sent to clients.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// --- Constructors ---

// Unauthorized creates an AppError for a missing or invalid client token.
func Unauthorized() *AppError {
	return &AppError{
		Code: ErrCodeUnauthorized, Message: "Invalid client token.",
		HTTPStatus: http.StatusUnauthorized, Retryable: false,
	}
}

// MissingConfig creates an AppError for absent required server configuration.
func MissingConfig(key string) *AppError {
	return &AppError{
		Code: ErrCodeConfig, Message: fmt.Sprintf("Server is missing %s.", key),
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// UpstreamTimeout creates an AppError for an upstream call that timed out.
func UpstreamTimeout() *AppError {
	return &AppError{
		Code: ErrCodeUpstreamTimeout, Message: "Timed out while waiting for OpenAI transcription.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
	}
}

// UpstreamUnavailable creates an AppError for an unreachable upstream.
func UpstreamUnavailable() *AppError {
	return &AppError{
		Code: ErrCodeUpstreamUnavailable, Message: "Could not connect to OpenAI transcription service.",
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
	}
}

// UpstreamInvalidResponse creates an AppError for an unusable upstream payload.
func UpstreamInvalidResponse(message string) *AppError {
	return &AppError{
		Code: ErrCodeUpstreamInvalid, Message: message,
		HTTPStatus: http.StatusBadGateway, Retryable: true,
	}
}

// UpstreamStatus creates an AppError for an upstream HTTP failure. The status
// is passed through and retryable is derived from it.
func UpstreamStatus(status int, code ErrorCode, message string) *AppError {
	return &AppError{
		Code: code, Message: message,
		HTTPStatus: status, Retryable: IsRetryableStatus(status),
	}
}

// Validation creates an AppError for malformed or missing request fields.
func Validation(message string) *AppError {
	if message == "" {
		message = "Invalid request."
	}
	return &AppError{
		Code: ErrCodeValidation, Message: message,
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
	}
}

// MissingField creates an AppError for a missing required request field.
func MissingField(field string) *AppError {
	return Validation(fmt.Sprintf("Missing required field: %s", field))
}

// Internal creates an AppError for an unexpected internal failure. The cause
// is retained for logging but its message is never exposed to clients.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
