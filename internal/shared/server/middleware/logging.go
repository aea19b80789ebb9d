package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"surplus-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		conversionID, _ := c.Get("conversionId")
		rowCount, _ := c.Get("rowCount")

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"bytes":         c.Writer.Size(),
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"conversion_id": conversionID,
			"row_count":     rowCount,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
