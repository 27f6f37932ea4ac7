// Package api implements the HTTP handlers for the transcribe proxy: the
// transcription endpoint that authenticates, validates, forwards to the
// upstream provider, and shapes the success payload, plus the health
// endpoint.
package api
