package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
)

type CategoryRepository interface {
	Add(ctx context.Context, category *entity.Category) (string, error)
}
