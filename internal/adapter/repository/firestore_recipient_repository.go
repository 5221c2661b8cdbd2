package repository

import (
	"context"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/pkg/errors"
	"hushhnotify/pkg/logger"

	"cloud.google.com/go/firestore"
)

// Profiles were written by several app versions, so field spellings vary.
// Order is precedence.
var (
	tokenFields = []string{"fcm_token", "fcmToken"}
	nameFields  = []string{"fullname", "fullName", "name"}
)

const (
	defaultUserName  = "User"
	defaultAgentName = "Agent"
)

type firestoreRecipientRepository struct {
	client           *firestore.Client
	usersCollection  string
	agentsCollection string
}

func NewFirestoreRecipientRepository(client *firestore.Client, usersCollection, agentsCollection string) repository.RecipientRepository {
	return &firestoreRecipientRepository{
		client:           client,
		usersCollection:  usersCollection,
		agentsCollection: agentsCollection,
	}
}

func (r *firestoreRecipientRepository) GetUser(ctx context.Context, userID string) (*entity.Recipient, error) {
	return r.get(ctx, r.usersCollection, userID, entity.RecipientRoleUser, defaultUserName)
}

func (r *firestoreRecipientRepository) GetAgent(ctx context.Context, agentID string) (*entity.Recipient, error) {
	return r.get(ctx, r.agentsCollection, agentID, entity.RecipientRoleAgent, defaultAgentName)
}

func (r *firestoreRecipientRepository) get(ctx context.Context, collection, id, role, defaultName string) (*entity.Recipient, error) {
	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			logger.Debug("Recipient document not found in %s: %s", collection, id)
			return nil, nil
		}
		return nil, errors.Internal("Failed to get recipient profile", err)
	}

	if !doc.Exists() {
		return nil, nil
	}

	return RecipientFromProfile(id, role, doc.Data(), defaultName), nil
}

// RecipientFromProfile extracts token and display name from a raw profile
// document. A missing token is not an error; the recipient simply has
// nowhere to be notified.
func RecipientFromProfile(id, role string, data map[string]interface{}, defaultName string) *entity.Recipient {
	name := firstString(data, nameFields...)
	if name == "" {
		name = defaultName
	}

	return &entity.Recipient{
		ID:       id,
		Role:     role,
		FCMToken: firstString(data, tokenFields...),
		FullName: name,
	}
}

func firstString(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := data[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
