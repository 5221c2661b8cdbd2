package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
)

type NotificationRepository interface {
	// AppendForAgent stores an inbox record under the agent's profile and
	// returns the generated record id.
	AppendForAgent(ctx context.Context, agentID string, notification *entity.AgentNotification) (string, error)
}
