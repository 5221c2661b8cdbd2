package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"

	"firebase.google.com/go/v4/db"
)

const bidsNode = "bids"

type rtdbBidRepository struct {
	client *db.Client
}

// NewRTDBBidRepository mirrors bids into the Realtime Database under
// bids/{bidId} for low-latency reads by the app.
func NewRTDBBidRepository(client *db.Client) repository.BidRepository {
	return &rtdbBidRepository{client: client}
}

func (r *rtdbBidRepository) Save(ctx context.Context, bidID string, bid *entity.Bid) error {
	if err := r.client.NewRef(BidPath(bidID)).Set(ctx, bid); err != nil {
		return errors.Internal("Failed to save bid to Realtime Database", err)
	}
	return nil
}

func BidPath(bidID string) string {
	return bidsNode + "/" + bidID
}
