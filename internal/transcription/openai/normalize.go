package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
)

// normalizeError parses a failed upstream response body into a stable
// (errorCode, message) pair. OpenAI error bodies look like
// {"error": {"message": "...", "code": "..."}} but none of that structure is
// guaranteed; every missing piece falls back to a status-based generic.
// Code and message are extracted independently: either may be custom while
// the other stays generic.
func normalizeError(body []byte, status int) (code apperrors.ErrorCode, message string) {
	code = apperrors.ErrCodeUpstreamError
	message = fmt.Sprintf("OpenAI returned status %d.", status)

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return code, message
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return code, message
	}
	errObj, ok := obj["error"].(map[string]any)
	if !ok {
		return code, message
	}

	if raw, ok := errObj["code"].(string); ok && raw != "" {
		normalized := strings.ReplaceAll(strings.ToUpper(raw), "-", "_")
		code = apperrors.ErrorCode("OPENAI_" + normalized)
	}
	if msg, ok := errObj["message"].(string); ok && msg != "" {
		message = msg
	}
	return code, message
}
