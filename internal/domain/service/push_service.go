package service

import (
	"context"

	"hushhnotify/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_push_service.go -package=mocks hushhnotify/internal/domain/service PushService

// PushService delivers one payload to one device token and returns the
// relay's message id.
type PushService interface {
	Send(ctx context.Context, payload *entity.PushPayload) (string, error)
}
