package api

import (
	"hushhnotify/internal/adapter/api/handler"
	apimiddleware "hushhnotify/internal/adapter/api/middleware"
	"hushhnotify/internal/adapter/api/router"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer wires middleware and routes onto a fresh echo instance.
func NewServer(handlers *handler.Handlers, authMiddleware *apimiddleware.AuthMiddleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(apimiddleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, handlers, authMiddleware)

	return e
}
