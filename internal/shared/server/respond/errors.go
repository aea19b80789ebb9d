package respond

import (
	"github.com/gin-gonic/gin"

	"surplus-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized JSON error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	logError(c, status, code, message)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Text sends a plain-text error response. The code is only logged.
func Text(c *gin.Context, status int, code, message string) {
	logError(c, status, code, message)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(status, message)
	c.Abort()
}

func logError(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if conversionID := c.GetString("conversionId"); conversionID != "" {
		fields["conversion_id"] = conversionID
	}
	telemetry.Error("http.error", fields)
}
