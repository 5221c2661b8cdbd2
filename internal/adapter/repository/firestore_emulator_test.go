package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushhnotify/internal/domain/entity"
)

// These run against the Firestore emulator only:
//
//	FIRESTORE_EMULATOR_HOST=localhost:8081 go test ./internal/adapter/repository/...
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "hushh-test")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestFirestoreRecipientRepositoryEmulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	suffix := time.Now().Format("150405.000")

	users := "HushUsers_" + suffix
	agents := "Hushhagents_" + suffix
	_, err := client.Collection(agents).Doc("a1").Set(ctx, map[string]interface{}{
		"fcm_token": "agent-token",
		"fullName":  "Alice Agent",
	})
	require.NoError(t, err)

	repo := NewFirestoreRecipientRepository(client, users, agents)

	agent, err := repo.GetAgent(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, "agent-token", agent.FCMToken)
	assert.Equal(t, "Alice Agent", agent.FullName)

	missing, err := repo.GetUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFirestoreBidAndNotificationRepositoryEmulator(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	suffix := time.Now().Format("150405.000")

	bids := NewFirestoreBidRepository(client, "bids_"+suffix)
	bid := &entity.Bid{AgentID: "a1", ProductID: "p1", Status: entity.BidStatusPending, Quantity: 1}
	require.NoError(t, bids.Save(ctx, "bid_a1_p1_1", bid))
	require.NoError(t, bids.Save(ctx, "bid_a1_p1_1", bid))

	snap, err := client.Collection("bids_" + suffix).Doc("bid_a1_p1_1").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pending", snap.Data()["status"])

	inbox := NewFirestoreNotificationRepository(client, "HushhAgents_"+suffix)
	record := &entity.AgentNotification{Title: "New Item Added to Cart", Type: entity.NotificationTypeCartItemAdded}
	id, err := inbox.AppendForAgent(ctx, "a1", record)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, record.ID)

	stored, err := client.Collection("HushhAgents_" + suffix).Doc("a1").Collection("notifications").Doc(id).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, false, stored.Data()["isRead"])

	categories := NewFirestoreCategoryRepository(client, "agent_categories_"+suffix)
	catID, err := categories.Add(ctx, &entity.Category{Name: "Footwear", Description: "Shoes", IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, catID)
}
