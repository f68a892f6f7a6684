package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/condor-cl/users-api/internal/logger"
)

// Logging logs method, path, status and duration for each request.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		log.Info("HTTP request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"request_id", c.GetString(RequestIDKey))

		if status >= 500 {
			log.Error("HTTP request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status,
				"request_id", c.GetString(RequestIDKey))
		}
	}
}
