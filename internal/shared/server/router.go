package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

const rateLimitGroupCV = "CV_RENDER"

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg gin.IRoutes)
}

// RouterDeps carries the handlers mounted on the router.
type RouterDeps struct {
	Config         config.Config
	CVHandler      RouteRegistrar
	ContactHandler RouteRegistrar
	GitHubHandler  RouteRegistrar
	PDFHandler     RouteRegistrar
	Limiter        *middleware.RateLimiter
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
			GroupFor: rateLimitGroup,
			Limiter:  deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				rateLimitGroupCV: {Rate: deps.Config.RateLimitCVRPS, Burst: deps.Config.RateLimitCVBurst},
			},
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	for _, h := range []RouteRegistrar{deps.CVHandler, deps.ContactHandler, deps.GitHubHandler, deps.PDFHandler} {
		if h != nil {
			h.RegisterRoutes(r)
		}
	}

	return r
}

// Only the endpoints that drive the PDF renderer are limited.
func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/cv-handler", "/convert-to-pdf":
		return rateLimitGroupCV
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
