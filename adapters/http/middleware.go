package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

const GinContextKeyRequestID = "requestID"

// ErrorMiddleware drains errors recorded via c.Error and writes the JSON
// error envelope. Read-path handlers prefer degrading over erroring, so
// anything that reaches this point is a real failure.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		requestID := c.GetString(GinContextKeyRequestID)
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr, fields...)
			} else {
				log.Warn("request rejected: "+appErr.Message, fields...)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err, fields...)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "An internal server error occurred",
		})
	}
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
