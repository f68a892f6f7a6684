package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestID assigns every request an id, honoring one supplied by the
// caller, and echoes it in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
