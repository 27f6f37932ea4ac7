package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcribe-proxy/internal/apperrors"
	"github.com/kbukum/transcribe-proxy/internal/logger"
	"github.com/kbukum/transcribe-proxy/internal/server/middleware"
)

// RespondError is the single boundary that renders any failure to the client.
// An *apperrors.AppError passes through with its own status, code, and
// retryable flag; anything else becomes a generic 500 whose internal message
// is logged but never leaked. Every error response carries the request ID
// header and emits one structured log event.
func RespondError(c *gin.Context, err error) {
	requestID := middleware.RequestIDFrom(c)

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		logger.Error("unhandled error", map[string]interface{}{
			logger.FieldRequestID: requestID,
			"error_type":          fmt.Sprintf("%T", err),
		})
		appErr = apperrors.Internal(err)
	}

	fields := map[string]interface{}{
		logger.FieldRequestID: requestID,
		logger.FieldStatus:    appErr.HTTPStatus,
		"error_code":          appErr.Code,
		"retryable":           appErr.Retryable,
	}
	if appErr.Cause != nil {
		fields[logger.FieldError] = appErr.Cause.Error()
	}
	if appErr.HTTPStatus >= 500 {
		logger.Error("request error", fields)
	} else {
		logger.Warn("request error", fields)
	}

	c.Header(middleware.HeaderRequestID, requestID)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
