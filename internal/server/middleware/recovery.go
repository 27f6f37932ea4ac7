package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
	"github.com/kbukum/transcribe-proxy/internal/logger"
)

// Recovery returns middleware that recovers from panics, logs the failure
// category with the stack, and renders the generic internal error envelope.
// The panic value itself is never sent to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", map[string]interface{}{
					logger.FieldRequestID: RequestIDFrom(c),
					"error":               fmt.Sprintf("%v", r),
					"stack":               string(debug.Stack()),
					"path":                c.Request.URL.Path,
					"method":              c.Request.Method,
				})
				appErr := apperrors.Internal(fmt.Errorf("panic: %v", r))
				c.Header(HeaderRequestID, RequestIDFrom(c))
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			}
		}()
		c.Next()
	}
}
