// Package middleware provides the Gin middleware stack for the transcribe
// proxy: panic recovery, request-ID correlation, optional CORS, and request
// lifecycle logging.
package middleware
