package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"

	"cloud.google.com/go/firestore"
)

type firestoreBidRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreBidRepository is the queryable copy of every bid.
func NewFirestoreBidRepository(client *firestore.Client, collection string) repository.BidRepository {
	return &firestoreBidRepository{client: client, collection: collection}
}

func (r *firestoreBidRepository) Save(ctx context.Context, bidID string, bid *entity.Bid) error {
	_, err := r.client.Collection(r.collection).Doc(bidID).Set(ctx, bid)
	if err != nil {
		return errors.Internal("Failed to save bid to Firestore", err)
	}
	return nil
}
