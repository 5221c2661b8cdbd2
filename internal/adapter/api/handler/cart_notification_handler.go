package handler

import (
	"hushhnotify/internal/usecase"
	"hushhnotify/pkg/logger"
	"hushhnotify/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartNotificationHandler struct {
	cartNotificationUseCase *usecase.CartNotificationUseCase
}

func NewCartNotificationHandler(cartNotificationUseCase *usecase.CartNotificationUseCase) *CartNotificationHandler {
	return &CartNotificationHandler{
		cartNotificationUseCase: cartNotificationUseCase,
	}
}

// NotifyCartAdd serves the sendCartItemNotification callable.
func (h *CartNotificationHandler) NotifyCartAdd(c echo.Context) error {
	if uid := callerUID(c); uid != "" {
		logger.Info("Authenticated user: %s", uid)
	} else {
		logger.Info("No authentication context - proceeding with data validation")
	}

	var input usecase.CartNotificationInput
	if err := bindCallable(c, &input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.cartNotificationUseCase.NotifyCartAdd(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
