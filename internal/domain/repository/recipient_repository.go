package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
)

type RecipientRepository interface {
	// GetUser returns nil, nil when the user has no profile document.
	GetUser(ctx context.Context, userID string) (*entity.Recipient, error)

	// GetAgent returns nil, nil when the agent has no profile document.
	GetAgent(ctx context.Context, agentID string) (*entity.Recipient, error)
}
