// Package server provides the HTTP server for the transcribe proxy, built on
// Gin with h2c support, a configurable middleware stack, and the single
// response boundary that renders service errors to clients.
package server
