package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes under the API group.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimit, cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimit, cfg.AuthHandler.Login)
		auth.GET("/user", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
		auth.POST("/forgot-password", cfg.RateLimit, cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.RateLimit, cfg.AuthHandler.ResetPassword)
	}
}
