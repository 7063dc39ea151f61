package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the request ID header honored on ingress and echoed
// on every response.
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "request_id"

// RequestID assigns each request an ID, reusing the caller's when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ctxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// Logger logs one line per request: ID, method, path, status, response
// size, and latency.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		requestID := c.GetString(ctxRequestID)
		log.Printf("middleware.Logger: [%s] %s %s %d %dB %s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}

// Recovery converts panics into a 500 response matching the standard
// error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(ctxRequestID)
		log.Printf("middleware.Recovery: [%s] panic recovered: %v", requestID, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL", "message": "internal server error"},
		})
	})
}
