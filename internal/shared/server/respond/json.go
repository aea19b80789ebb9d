package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as JSON. API payloads (history, health) describe live
// state, so they are marked uncacheable.
func JSON(c *gin.Context, status int, payload any) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// OK is JSON with 200.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
