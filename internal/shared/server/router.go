package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"surplus-backend/internal/conversions"
	"surplus-backend/internal/services/health"
	"surplus-backend/internal/shared/config"
	"surplus-backend/internal/shared/metrics"
	"surplus-backend/internal/shared/server/middleware"
	"surplus-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers mounted on the engine.
type RouterDeps struct {
	Config            config.Config
	ConversionHandler *conversions.Handler
	RateLimiter       *middleware.RateLimiter
	Health            *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: middleware.UploadGroup,
			Limiter:  deps.RateLimiter,
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: deps.Config.UploadRatePerSec, Burst: deps.Config.UploadRateBurst},
			},
		}),
	)

	deps.ConversionHandler.RegisterRoutes(&r.RouterGroup)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	deps.ConversionHandler.RegisterAPIRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
