package router

import (
	"hushhnotify/internal/adapter/api/handler"
	"hushhnotify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// Callables keep the function names the mobile app already invokes.
func SetupCallableRouter(e *echo.Echo, handlers *handler.Handlers, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/helloWorld", handlers.Ping.Ping, authMiddleware.Identify)
	e.POST("/saveAgentBid", handlers.Bid.PlaceBid, authMiddleware.Identify)
	e.POST("/sendCartItemNotification", handlers.CartNotification.NotifyCartAdd, authMiddleware.Identify)
}
