// Package httpclient provides the outbound HTTP client used for upstream
// calls. It applies a fixed total timeout, classifies transport failures as
// timeout or connection errors, and supports streamed multipart/form-data
// bodies so large uploads are never buffered wholesale in memory.
//
// Unlike a general-purpose client, HTTP error statuses are not turned into
// errors here: the caller interprets the raw status and body itself.
package httpclient
