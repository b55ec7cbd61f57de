package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "processo-backend/internal/auth"
	"processo-backend/internal/cases"
	"processo-backend/internal/shared/config"
	"processo-backend/internal/shared/metrics"
	"processo-backend/internal/shared/server/middleware"
	"processo-backend/internal/shared/server/respond"
	"processo-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config       config.Config
	CasesHandler *cases.Handler
	UsersHandler *users.Handler
	GoogleAuth   *googleauth.GoogleService
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
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"IMPORT":  {Rate: 0.5, Burst: 5},
				"SUMMARY": {Rate: 0.2, Burst: 3},
			},
			GroupFor: rateLimitGroup,
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.CasesHandler != nil {
		deps.CasesHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup throttles the two operations that hit paid or
// quota-limited upstreams.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	path := c.Request.URL.Path
	switch {
	case path == "/api/v1/cases/import":
		return "IMPORT"
	case strings.HasSuffix(path, "/summary"):
		return "SUMMARY"
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
