package apperrors

import (
	stderrors "errors"
)

// ErrorResponse is the flat JSON error envelope returned to clients.
type ErrorResponse struct {
	ErrorCode ErrorCode `json:"errorCode"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		ErrorCode: e.Code,
		Message:   e.Message,
		Retryable: e.Retryable,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
