package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags every request with a short id and logs method, path,
// status and latency after the handler chain runs.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()[:8]
		start := time.Now()

		c.Next()

		log.Printf(
			"[REQ %s] %s %s -> %d (%s)",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
		)
	}
}
