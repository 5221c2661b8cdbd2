package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks hushhnotify/internal/domain/repository BidRepository,RecipientRepository,NotificationRepository,CategoryRepository

// BidRepository is an upsert-by-key store for bids. Saving the same id twice
// overwrites.
type BidRepository interface {
	Save(ctx context.Context, bidID string, bid *entity.Bid) error
}
