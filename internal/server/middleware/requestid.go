package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the correlation header echoed on every response.
const HeaderRequestID = "X-Request-Id"

const contextKeyRequestID = "request_id"

// RequestID injects a unique request ID into every request/response. A
// client-supplied X-Request-Id is preserved; otherwise a fresh UUID is
// generated. Every response carries the same ID that was established here.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom returns the request ID established for this request, or
// "unknown" when the middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	if id := c.GetString(contextKeyRequestID); id != "" {
		return id
	}
	return "unknown"
}
