// File: internal/handler/http/router.go
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/expensio-labs/expense-platform/auth-service/internal/handler/http/middleware"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	AuthHandler    *AuthHandler
	RoleHandler    *RoleHandler
	TokenVerifier  middleware.TokenVerifier
	Logger         *zap.Logger
	MetricsEnabled bool
}

// NewRouter builds the gin engine. Login and registration are public; the
// role resolution endpoint requires a bearer token.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if deps.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/register", deps.AuthHandler.Register)
	}

	roles := v1.Group("/roles")
	roles.Use(middleware.RequireAuth(deps.TokenVerifier))
	{
		roles.GET("/:userId", deps.RoleHandler.GetPermissions)
	}

	return router
}
