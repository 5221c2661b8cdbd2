package handler

import (
	"hushhnotify/internal/usecase"
)

// Handlers bundles every HTTP entry point for the router.
type Handlers struct {
	Bid              *BidHandler
	CartNotification *CartNotificationHandler
	Ping             *PingHandler
	Health           *HealthHandler
}

func Setup(
	bidUseCase *usecase.BidUseCase,
	cartNotificationUseCase *usecase.CartNotificationUseCase,
) *Handlers {
	return &Handlers{
		Bid:              NewBidHandler(bidUseCase),
		CartNotification: NewCartNotificationHandler(cartNotificationUseCase),
		Ping:             NewPingHandler(),
		Health:           NewHealthHandler(),
	}
}
