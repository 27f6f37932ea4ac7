package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcribe-proxy/internal/logger"
)

// RequestLogger returns middleware that logs every request completion with
// method, path, status, and duration. Health-check traffic is silently
// skipped to keep probe noise out of the logs.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		fields := map[string]interface{}{
			"method":              c.Request.Method,
			"path":                c.Request.URL.Path,
			logger.FieldStatus:    status,
			logger.FieldDuration:  duration.Milliseconds(),
			logger.FieldRequestID: RequestIDFrom(c),
		}

		switch {
		case status >= 500:
			log.Error("request completed", fields)
		case status >= 400:
			log.Warn("request completed", fields)
		default:
			log.Info("request completed", fields)
		}
	}
}
