package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger logs one line per request with its id, status and latency.
// It must run after RequestID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		rid, _ := GetRequestID(c)
		entry := log.WithFields(log.Fields{
			"request_id": rid,
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"cost_ms":    time.Since(start).Milliseconds(),
		})

		if len(c.Errors) > 0 {
			entry.Errorf("request failed: %s", c.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}
