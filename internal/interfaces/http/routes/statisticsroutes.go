package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/middleware"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
)

// StatisticsRouteConfig holds dependencies for the statistics route.
type StatisticsRouteConfig struct {
	StatisticsHandler *handlers.StatisticsHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupStatisticsRoutes configures the admin statistics route under the
// API group.
func SetupStatisticsRoutes(api *gin.RouterGroup, cfg *StatisticsRouteConfig) {
	api.GET("/statistics", cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin(), cfg.StatisticsHandler.GetStatistics)
}
