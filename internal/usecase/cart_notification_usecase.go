package usecase

import (
	"context"
	"time"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/internal/domain/service"
	"hushhnotify/pkg/logger"
)

const (
	errMissingAgentOrProduct = "Missing agentId or productId"
	errAgentTokenNotFound    = "Agent FCM token not found"
)

type CartNotificationUseCase struct {
	recipientRepo    repository.RecipientRepository
	notificationRepo repository.NotificationRepository
	pushService      service.PushService
	now              func() time.Time
}

func NewCartNotificationUseCase(
	recipientRepo repository.RecipientRepository,
	notificationRepo repository.NotificationRepository,
	pushService service.PushService,
) *CartNotificationUseCase {
	return &CartNotificationUseCase{
		recipientRepo:    recipientRepo,
		notificationRepo: notificationRepo,
		pushService:      pushService,
		now:              time.Now,
	}
}

// AgentName from the request is ignored; the agent's stored name is used.
type CartNotificationInput struct {
	ProductID    string  `json:"productId" validate:"required"`
	ProductName  string  `json:"productName"`
	ProductPrice Number  `json:"productPrice"`
	ProductImage string  `json:"productImage"`
	AgentID      string  `json:"agentId" validate:"required"`
	AgentName    string  `json:"agentName"`
	UserID       string  `json:"userId" validate:"required"`
	UserName     string  `json:"userName" validate:"required"`
	Quantity     Number  `json:"quantity"`
}

type CartNotificationResult struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notificationId,omitempty"`
	Error          string `json:"error,omitempty"`

	Push  SideEffect `json:"-"`
	Inbox SideEffect `json:"-"`
}

// NotifyCartAdd tells the owning agent that a shopper carted their item.
// Neither the push nor the inbox append can fail the call once the agent
// has a token on file.
func (uc *CartNotificationUseCase) NotifyCartAdd(ctx context.Context, input CartNotificationInput) (*CartNotificationResult, error) {
	log := logger.WithFields(map[string]interface{}{
		"product_id": input.ProductID,
		"agent_id":   input.AgentID,
		"user_id":    input.UserID,
	})
	log.Info("Cart item notification requested")

	if input.AgentID == "" || input.ProductID == "" {
		log.Warn("Missing agentId or productId, skipping notification")
		return &CartNotificationResult{Success: false, Error: errMissingAgentOrProduct}, nil
	}
	if missing := missingFields(input); len(missing) > 0 {
		log.WithField("missing", missing).Warn("Missing required fields, skipping notification")
		return &CartNotificationResult{Success: false, Error: errMissingRequiredFields}, nil
	}

	agent, err := uc.recipientRepo.GetAgent(ctx, input.AgentID)
	if err != nil {
		log.WithError(err).Error("Error getting agent FCM token")
		return &CartNotificationResult{Success: false, Error: errAgentTokenNotFound}, nil
	}
	if !agent.HasToken() {
		log.Info("Agent FCM token not found")
		return &CartNotificationResult{Success: false, Error: errAgentTokenNotFound}, nil
	}
	log.Debugf("Agent FCM token found: %s", logger.MaskToken(agent.FCMToken))

	now := uc.now().UTC()
	notification := &entity.Notification{
		NotificationID: entity.CartNotificationID(input.UserID, input.ProductID, now),
		Type:           entity.NotificationTypeCartItemAdded,
		UserID:         input.UserID,
		UserName:       input.UserName,
		ProductID:      input.ProductID,
		ProductName:    input.ProductName,
		ProductPrice:   input.ProductPrice.Float64(),
		ProductImage:   input.ProductImage,
		Quantity:       quantityOrDefault(input.Quantity),
		AgentID:        input.AgentID,
		AgentName:      agent.FullName,
		Timestamp:      entity.FormatTimestamp(now),
		Action:         entity.NotificationActionViewCart,
	}
	log = log.WithField("notification_id", notification.NotificationID)

	result := &CartNotificationResult{
		Success:        true,
		NotificationID: notification.NotificationID,
	}

	payload := service.ComposeCartPush(notification, agent.FCMToken)
	messageID, err := uc.pushService.Send(ctx, payload)
	if err != nil {
		log.WithError(err).Error("Error sending cart item notification")
		result.Push = SideEffect{Attempted: true, Err: err}
	} else {
		log.WithField("message_id", messageID).Info("Cart item notification sent")
		result.Push = SideEffect{Attempted: true, ID: messageID}
	}

	result.Inbox = uc.storeForAgent(ctx, input.AgentID, notification, now)

	return result, nil
}

func (uc *CartNotificationUseCase) storeForAgent(ctx context.Context, agentID string, notification *entity.Notification, now time.Time) SideEffect {
	record := service.ComposeAgentInboxRecord(notification)
	record.CreatedAt = now

	id, err := uc.notificationRepo.AppendForAgent(ctx, agentID, record)
	if err != nil {
		logger.Error("Error storing notification for agent %s: %v", agentID, err)
		return SideEffect{Attempted: true, Err: err}
	}

	logger.Info("Notification stored for agent: %s", agentID)
	return SideEffect{Attempted: true, ID: id}
}
