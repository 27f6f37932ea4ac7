package transcription

import (
	"io"
	"strings"
)

// Request holds parameters for one transcription call. It is ephemeral and
// owned by the caller for the duration of a single request.
type Request struct {
	// File is the audio stream. Seekable streams are rewound before sending.
	File io.Reader
	// Filename is the original upload filename. Empty falls back to "audio".
	Filename string
	// ContentType is the upload MIME type. Empty falls back to
	// "application/octet-stream".
	ContentType string
	// Model is the transcription model to use.
	Model string
	// Language is the expected language of the audio (e.g. "en"). Optional.
	Language string
	// Prompt guides the transcription style. Optional.
	Prompt string
}

// Payload is the parsed top-level object of a successful upstream response.
type Payload map[string]any

// Text returns the transcript under key "text", reporting whether it was
// present as a string.
func (p Payload) Text() (string, bool) {
	text, ok := p["text"].(string)
	return text, ok
}

// HasText reports whether the payload carries a non-blank transcript.
func (p Payload) HasText() bool {
	text, ok := p.Text()
	return ok && strings.TrimSpace(text) != ""
}

// DurationSec returns the audio duration in seconds, from "duration" with
// "audio_duration" as fallback. Returns nil when neither field is numeric.
// Note the asymmetry with Text: the transcript is only ever read from "text".
func (p Payload) DurationSec() *float64 {
	for _, key := range []string{"duration", "audio_duration"} {
		switch v := p[key].(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		}
	}
	return nil
}
