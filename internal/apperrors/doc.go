// Package apperrors provides the service error taxonomy for the transcribe
// proxy. It implements a structured error type with machine-readable codes,
// HTTP status mapping, and retryable classification derived from the upstream
// status rather than set ad hoc.
package apperrors
