package router

import (
	"hushhnotify/internal/adapter/api/handler"
	"hushhnotify/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, handlers *handler.Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupCallableRouter(e, handlers, authMiddleware)
	SetupHealthRouter(e, handlers.Health)
}
