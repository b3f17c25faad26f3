package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/sovoz-hq/sovoz/internal/interfaces/http/handlers/ticket"
	"github.com/sovoz-hq/sovoz/internal/interfaces/http/middleware"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *ticketHandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
}

// SetupTicketRoutes configures ticket routes under the API group.
// The anonymous submission route is the only ticket route reachable
// without a token.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	api.POST("/tickets/anonymous", cfg.RateLimit, cfg.TicketHandler.CreateTicket)

	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.GET("/:id/attachment/:index", cfg.TicketHandler.DownloadAttachment)
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.PATCH("/:id/status", authorization.RequireAdmin(), cfg.TicketHandler.ChangeStatus)
	}
}
