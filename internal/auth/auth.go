package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
)

// FallbackHeader carries the raw token for clients that cannot set a
// standard Authorization header.
const FallbackHeader = "x-app-token"

// Authenticator validates the optional shared-secret client token.
type Authenticator struct {
	required string
}

// New creates an Authenticator. An empty required token disables
// authentication entirely.
func New(required string) *Authenticator {
	return &Authenticator{required: required}
}

// Enabled reports whether a client token is required.
func (a *Authenticator) Enabled() bool {
	return a.required != ""
}

// Authenticate validates the credential in the request headers. A bearer
// Authorization header is preferred; if absent or malformed, the fallback
// header is read as the raw token. Returns a 401 AppError on any mismatch.
func (a *Authenticator) Authenticate(h http.Header) error {
	if !a.Enabled() {
		return nil
	}

	token := bearerToken(h.Get("Authorization"))
	if token == "" {
		token = strings.TrimSpace(h.Get(FallbackHeader))
	}

	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(a.required)) != 1 {
		return apperrors.Unauthorized()
	}
	return nil
}

// bearerToken extracts the token from a "Bearer <token>" header value.
// The scheme match is case-insensitive; anything malformed yields "".
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	scheme := strings.ToLower(strings.TrimSpace(parts[0]))
	token := strings.TrimSpace(parts[1])
	if scheme != "bearer" || token == "" {
		return ""
	}
	return token
}
