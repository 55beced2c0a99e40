package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID takes the request id from the X-Request-ID header, or generates
// one, stores it in the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID retrieves the request id from the context
func GetRequestID(c *gin.Context) (string, bool) {
	rid, exists := c.Get(RequestIDKey)
	if !exists {
		return "", false
	}
	s, ok := rid.(string)
	return s, ok
}
