package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"

	"cloud.google.com/go/firestore"
)

type firestoreCategoryRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreCategoryRepository(client *firestore.Client, collection string) repository.CategoryRepository {
	return &firestoreCategoryRepository{client: client, collection: collection}
}

// Add writes the category under an auto-generated id. Timestamps are left
// zero so the server fills them.
func (r *firestoreCategoryRepository) Add(ctx context.Context, category *entity.Category) (string, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, category)
	if err != nil {
		return "", errors.Internal("Failed to add category", err)
	}
	return ref.ID, nil
}
