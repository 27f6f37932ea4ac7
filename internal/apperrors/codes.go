package apperrors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Upstream failure codes (retryable depends on the upstream status).
const (
	// ErrCodeUpstreamTimeout indicates the upstream call timed out.
	ErrCodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
	// ErrCodeUpstreamUnavailable indicates the upstream service could not be reached.
	ErrCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	// ErrCodeUpstreamInvalid indicates the upstream returned an unusable payload.
	ErrCodeUpstreamInvalid ErrorCode = "UPSTREAM_INVALID_RESPONSE"
	// ErrCodeUpstreamError is the generic code for an upstream HTTP failure
	// whose body carried no usable error code of its own.
	ErrCodeUpstreamError ErrorCode = "UPSTREAM_ERROR"
)

// Request-side codes (never retryable).
const (
	// ErrCodeUnauthorized indicates a missing or invalid client credential.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeValidation indicates malformed or missing request fields.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeConfig indicates the server itself is missing required configuration.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// retryableStatuses are the upstream HTTP statuses considered transient:
// resubmitting the same request may succeed.
var retryableStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// IsRetryableStatus reports whether an upstream HTTP status is transient.
func IsRetryableStatus(status int) bool {
	return retryableStatuses[status]
}
