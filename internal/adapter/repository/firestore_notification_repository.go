package repository

import (
	"context"
	"time"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"

	"cloud.google.com/go/firestore"
)

const notificationsSubcollection = "notifications"

type firestoreNotificationRepository struct {
	client          *firestore.Client
	agentCollection string
}

func NewFirestoreNotificationRepository(client *firestore.Client, agentCollection string) repository.NotificationRepository {
	return &firestoreNotificationRepository{client: client, agentCollection: agentCollection}
}

func (r *firestoreNotificationRepository) AppendForAgent(ctx context.Context, agentID string, notification *entity.AgentNotification) (string, error) {
	ref := r.client.Collection(r.agentCollection).
		Doc(agentID).
		Collection(notificationsSubcollection).
		NewDoc()

	notification.ID = ref.ID
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	if _, err := ref.Set(ctx, notification); err != nil {
		return "", errors.Internal("Failed to store agent notification", err)
	}

	return ref.ID, nil
}
