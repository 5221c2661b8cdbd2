package usecase

import (
	"context"
	"time"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/internal/domain/repository"
	"hushhnotify/internal/domain/service"
	"hushhnotify/pkg/errors"
	"hushhnotify/pkg/logger"
)

const (
	errMissingRequiredFields = "Missing required fields"
	bidSavedMessage          = "Bid saved successfully and notification sent"
)

type BidUseCase struct {
	kvStore       repository.BidRepository
	documentStore repository.BidRepository
	recipientRepo repository.RecipientRepository
	pushService   service.PushService
	now           func() time.Time
}

// NewBidUseCase takes the two bid stores in write order: the key-value
// mirror first, then the document store.
func NewBidUseCase(
	kvStore repository.BidRepository,
	documentStore repository.BidRepository,
	recipientRepo repository.RecipientRepository,
	pushService service.PushService,
) *BidUseCase {
	return &BidUseCase{
		kvStore:       kvStore,
		documentStore: documentStore,
		recipientRepo: recipientRepo,
		pushService:   pushService,
		now:           time.Now,
	}
}

type PlaceBidInput struct {
	ProductID    string  `json:"productId" validate:"required"`
	ProductName  string  `json:"productName"`
	ProductPrice Number  `json:"productPrice"`
	AgentID      string  `json:"agentId" validate:"required"`
	AgentName    string  `json:"agentName"`
	UserID       string  `json:"userId" validate:"required"`
	UserName     string  `json:"userName" validate:"required"`
	BidAmount    Number  `json:"bidAmount" validate:"required"`
	Quantity     Number  `json:"quantity"`
}

type PlaceBidResult struct {
	Success bool        `json:"success"`
	BidID   string      `json:"bidId,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    *entity.Bid `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`

	Notification SideEffect `json:"-"`
}

// PlaceBid records the bid in both stores and then tries to tell the user.
// Missing fields give a failed result, not an error; only a failed store
// write is returned as an error.
func (uc *BidUseCase) PlaceBid(ctx context.Context, input PlaceBidInput) (*PlaceBidResult, error) {
	log := logger.WithFields(map[string]interface{}{
		"product_id": input.ProductID,
		"agent_id":   input.AgentID,
		"user_id":    input.UserID,
	})
	log.Info("Agent bid save requested")

	if missing := missingFields(input); len(missing) > 0 {
		log.WithField("missing", missing).Warn("Missing required fields, skipping bid save")
		return &PlaceBidResult{Success: false, Error: errMissingRequiredFields}, nil
	}

	now := uc.now().UTC()
	validity := now.Add(entity.BidValidity)

	bid := &entity.Bid{
		AgentID:      input.AgentID,
		AgentName:    input.AgentName,
		UserID:       input.UserID,
		UserName:     input.UserName,
		ProductID:    input.ProductID,
		ProductName:  input.ProductName,
		ProductPrice: input.ProductPrice.Float64(),
		BidAmount:    input.BidAmount.Float64(),
		Quantity:     quantityOrDefault(input.Quantity),
		Status:       entity.BidStatusPending,
		Validity:     entity.FormatTimestamp(validity),
		CreatedAt:    entity.FormatTimestamp(now),
		UpdatedAt:    entity.FormatTimestamp(now),
	}
	bidID := entity.BidID(bid.AgentID, bid.ProductID, now)
	log = log.WithField("bid_id", bidID)

	// No transaction spans the two writes; a failure between them leaves
	// the mirror ahead of the document store.
	if err := uc.kvStore.Save(ctx, bidID, bid); err != nil {
		log.WithError(err).Error("Failed to save bid to key-value store")
		return nil, errors.Internal("Failed to save agent bid", err)
	}
	if err := uc.documentStore.Save(ctx, bidID, bid); err != nil {
		log.WithError(err).Error("Failed to save bid to document store")
		return nil, errors.Internal("Failed to save agent bid", err)
	}
	log.Info("Bid saved to both stores")

	result := &PlaceBidResult{
		Success: true,
		BidID:   bidID,
		Message: bidSavedMessage,
		Data:    bid,
	}
	result.Notification = uc.notifyUser(ctx, bid, now)

	return result, nil
}

func (uc *BidUseCase) notifyUser(ctx context.Context, bid *entity.Bid, now time.Time) SideEffect {
	log := logger.WithFields(map[string]interface{}{
		"user_id":    bid.UserID,
		"product_id": bid.ProductID,
	})

	recipient, err := uc.recipientRepo.GetUser(ctx, bid.UserID)
	if err != nil {
		log.WithError(err).Error("Error looking up user FCM token, continuing with bid save")
		return SideEffect{Err: err}
	}
	if !recipient.HasToken() {
		log.Info("User FCM token not found, skipping notification")
		return skipped("User FCM token not found")
	}
	log.Debugf("User FCM token found: %s", logger.MaskToken(recipient.FCMToken))

	notification := &entity.Notification{
		NotificationID: entity.BidNotificationID(bid.AgentID, bid.ProductID, now),
		Type:           entity.NotificationTypeAgentBid,
		UserID:         bid.UserID,
		UserName:       bid.UserName,
		ProductID:      bid.ProductID,
		ProductName:    bid.ProductName,
		ProductPrice:   bid.ProductPrice,
		AgentID:        bid.AgentID,
		AgentName:      bid.AgentName,
		BidAmount:      bid.BidAmount,
		Quantity:       bid.Quantity,
		Timestamp:      bid.CreatedAt,
		Action:         entity.NotificationActionViewBid,
		ExpiresAt:      bid.Validity,
		ShowBidDetails: true,
	}

	payload := service.ComposeBidPush(notification, recipient.FCMToken)
	messageID, err := uc.pushService.Send(ctx, payload)
	if err != nil {
		log.WithError(err).Error("Error sending bid notification, continuing with bid save")
		return SideEffect{Attempted: true, Err: err}
	}

	log.WithField("message_id", messageID).Info("Bid notification sent")
	return SideEffect{Attempted: true, ID: messageID}
}

// quantityOrDefault treats an absent or zero quantity as one item.
func quantityOrDefault(q Number) int {
	if q == 0 {
		return 1
	}
	return int(q)
}
