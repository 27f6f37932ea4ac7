// Package validation provides struct tag validation for inbound request
// forms, backed by go-playground/validator. Failures surface as 422
// VALIDATION_ERROR application errors carrying the first failure's
// human-readable description.
package validation
