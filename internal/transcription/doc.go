// Package transcription defines the provider interface and common types for
// forwarding audio to a speech-to-text backend.
//
// Providers return the upstream payload as a raw object rather than a parsed
// struct: the HTTP handler owns field extraction so the external contract
// stays in one place.
package transcription
