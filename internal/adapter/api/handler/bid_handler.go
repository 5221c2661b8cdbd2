package handler

import (
	"hushhnotify/internal/usecase"
	"hushhnotify/pkg/response"

	"github.com/labstack/echo/v4"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

// PlaceBid serves the saveAgentBid callable.
func (h *BidHandler) PlaceBid(c echo.Context) error {
	var input usecase.PlaceBidInput
	if err := bindCallable(c, &input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.bidUseCase.PlaceBid(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
