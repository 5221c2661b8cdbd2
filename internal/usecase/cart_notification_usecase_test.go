package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushhnotify/internal/domain/entity"
	repomocks "hushhnotify/internal/domain/repository/mocks"
	servicemocks "hushhnotify/internal/domain/service/mocks"
)

type cartFixture struct {
	recipients    *repomocks.MockRecipientRepository
	notifications *repomocks.MockNotificationRepository
	push          *servicemocks.MockPushService
	uc            *CartNotificationUseCase
}

func newCartFixture(t *testing.T) *cartFixture {
	ctrl := gomock.NewController(t)

	f := &cartFixture{
		recipients:    repomocks.NewMockRecipientRepository(ctrl),
		notifications: repomocks.NewMockNotificationRepository(ctrl),
		push:          servicemocks.NewMockPushService(ctrl),
	}
	f.uc = NewCartNotificationUseCase(f.recipients, f.notifications, f.push)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func validCartInput() CartNotificationInput {
	return CartNotificationInput{
		ProductID:    "p1",
		ProductName:  "Shoe",
		ProductPrice: 49.99,
		ProductImage: "https://cdn.example.com/shoe.png",
		AgentID:      "a1",
		AgentName:    "ignored",
		UserID:       "u1",
		UserName:     "Bob",
	}
}

func TestNotifyCartAdd_Success(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.recipients.EXPECT().GetAgent(ctx, "a1").
			Return(&entity.Recipient{ID: "a1", FCMToken: "agent-token", FullName: "Alice Agent"}, nil),
		f.push.EXPECT().Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *entity.PushPayload) (string, error) {
				assert.Equal(t, "agent-token", p.Token)
				assert.Equal(t, "Alice Agent", p.Data["agentName"])
				assert.Equal(t, "49.99", p.Data["productPrice"])
				assert.Equal(t, "1", p.Data["quantity"])
				assert.Equal(t, "Bob just added Shoe to their cart. Tap to start bidding Hushh Coins!", p.Body)
				return "projects/hushh/messages/2", nil
			}),
		f.notifications.EXPECT().AppendForAgent(ctx, "a1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, record *entity.AgentNotification) (string, error) {
				assert.False(t, record.IsRead)
				assert.Equal(t, "Shoe has been added to a customer's cart", record.Body)
				assert.Equal(t, "cart_item_added_u1_p1_1751365800123", record.Data.NotificationID)
				assert.Equal(t, "Alice Agent", record.Data.AgentName)
				assert.True(t, record.CreatedAt.Equal(fixedNow))
				return "inbox-1", nil
			}),
	)

	result, err := f.uc.NotifyCartAdd(ctx, validCartInput())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "cart_item_added_u1_p1_1751365800123", result.NotificationID)
	assert.Empty(t, result.Error)
	assert.True(t, result.Push.Succeeded())
	assert.True(t, result.Inbox.Succeeded())
	assert.Equal(t, "inbox-1", result.Inbox.ID)
}

func TestNotifyCartAdd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CartNotificationInput)
		wantErr string
	}{
		{"empty agentId", func(in *CartNotificationInput) { in.AgentID = "" }, "Missing agentId or productId"},
		{"empty productId", func(in *CartNotificationInput) { in.ProductID = "" }, "Missing agentId or productId"},
		{"empty userId", func(in *CartNotificationInput) { in.UserID = "" }, "Missing required fields"},
		{"empty userName", func(in *CartNotificationInput) { in.UserName = "" }, "Missing required fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)

			input := validCartInput()
			tt.mutate(&input)

			result, err := f.uc.NotifyCartAdd(context.Background(), input)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantErr, result.Error)
			assert.Empty(t, result.NotificationID)
		})
	}
}

func TestNotifyCartAdd_AgentWithoutToken(t *testing.T) {
	tests := []struct {
		name  string
		agent *entity.Recipient
		err   error
	}{
		{"no profile", nil, nil},
		{"profile without token", &entity.Recipient{ID: "a1", FullName: "Agent"}, nil},
		{"lookup error", nil, errors.New("permission denied")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCartFixture(t)
			ctx := context.Background()

			// push and inbox mocks have no expectations: nothing may be sent or written
			f.recipients.EXPECT().GetAgent(ctx, "a1").Return(tt.agent, tt.err)

			result, err := f.uc.NotifyCartAdd(ctx, validCartInput())
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, "Agent FCM token not found", result.Error)
			assert.Empty(t, result.NotificationID)
		})
	}
}

func TestNotifyCartAdd_SideEffectFailuresAreSwallowed(t *testing.T) {
	t.Run("relay rejects, inbox still written", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()

		f.recipients.EXPECT().GetAgent(ctx, "a1").Return(&entity.Recipient{ID: "a1", FCMToken: "tok", FullName: "Al"}, nil)
		f.push.EXPECT().Send(ctx, gomock.Any()).Return("", errors.New("quota exceeded"))
		f.notifications.EXPECT().AppendForAgent(ctx, "a1", gomock.Any()).Return("inbox-2", nil)

		result, err := f.uc.NotifyCartAdd(ctx, validCartInput())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.NotificationID)
		assert.Error(t, result.Push.Err)
		assert.True(t, result.Inbox.Succeeded())
	})

	t.Run("inbox append fails", func(t *testing.T) {
		f := newCartFixture(t)
		ctx := context.Background()

		f.recipients.EXPECT().GetAgent(ctx, "a1").Return(&entity.Recipient{ID: "a1", FCMToken: "tok", FullName: "Al"}, nil)
		f.push.EXPECT().Send(ctx, gomock.Any()).Return("projects/hushh/messages/3", nil)
		f.notifications.EXPECT().AppendForAgent(ctx, "a1", gomock.Any()).Return("", errors.New("firestore unavailable"))

		result, err := f.uc.NotifyCartAdd(ctx, validCartInput())
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.Push.Succeeded())
		assert.False(t, result.Inbox.Succeeded())
	})
}
