package transcription

import (
	"context"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	// Transcribe forwards audio for transcription and returns the raw
	// upstream payload. Failures are *apperrors.AppError values.
	Transcribe(ctx context.Context, req Request) (Payload, error)
}
