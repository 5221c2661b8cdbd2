package service

import (
	"fmt"
	"strconv"

	"hushhnotify/internal/domain/entity"
)

const (
	BidPushTitle  = "Hushh Coins Offer!"
	CartPushTitle = "New Item Added to Cart"

	bidChannelID  = "bid_notifications"
	cartChannelID = "cart_notifications"
	bidColor      = "#FFD700"
	cartColor     = "#FF6B35"
	bidCategory   = "bid_notification"
	cartCategory  = "cart_notification"

	notificationIcon = "ic_notification"
)

// ComposeBidPush builds the offer notification sent to the shopper.
func ComposeBidPush(n *entity.Notification, token string) *entity.PushPayload {
	body := fmt.Sprintf(
		"%s has offered you %s hushh coins for %s! Valid for 24 hours and automatically applied at checkout.",
		n.AgentName, FormatNumber(n.BidAmount), n.ProductName,
	)

	data := baseData(n)
	data["bidAmount"] = FormatNumber(n.BidAmount)
	data["expiresAt"] = n.ExpiresAt
	data["showBidDetails"] = strconv.FormatBool(n.ShowBidDetails)

	return &entity.PushPayload{
		Token:   token,
		Title:   BidPushTitle,
		Body:    body,
		Data:    data,
		Android: androidHints(bidChannelID, bidColor),
		APNS:    apnsHints(bidCategory),
	}
}

// ComposeCartPush builds the notification sent to the agent who owns the
// carted item.
func ComposeCartPush(n *entity.Notification, token string) *entity.PushPayload {
	body := fmt.Sprintf(
		"%s just added %s to their cart. Tap to start bidding Hushh Coins!",
		n.UserName, n.ProductName,
	)

	data := baseData(n)
	data["showBiddingInterface"] = "true"
	if n.ProductImage != "" {
		data["productImage"] = n.ProductImage
	}

	return &entity.PushPayload{
		Token:   token,
		Title:   CartPushTitle,
		Body:    body,
		Data:    data,
		Android: androidHints(cartChannelID, cartColor),
		APNS:    apnsHints(cartCategory),
	}
}

// ComposeAgentInboxRecord builds the copy stored under the agent's profile.
// The id is assigned by the store.
func ComposeAgentInboxRecord(n *entity.Notification) *entity.AgentNotification {
	return &entity.AgentNotification{
		Title:    CartPushTitle,
		Body:     fmt.Sprintf("%s has been added to a customer's cart", n.ProductName),
		Type:     n.Type,
		Priority: entity.NotificationPriorityHigh,
		IsRead:   false,
		Data:     *n,
	}
}

// FormatNumber renders numbers the way the client expects them in string
// metadata: shortest exact decimal, no exponent, no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func baseData(n *entity.Notification) map[string]string {
	return map[string]string{
		"notificationId": n.NotificationID,
		"type":           n.Type,
		"userId":         n.UserID,
		"userName":       n.UserName,
		"productId":      n.ProductID,
		"productName":    n.ProductName,
		"productPrice":   FormatNumber(n.ProductPrice),
		"agentId":        n.AgentID,
		"agentName":      n.AgentName,
		"quantity":       strconv.Itoa(n.Quantity),
		"timestamp":      n.Timestamp,
		"action":         n.Action,
	}
}

func androidHints(channelID, color string) entity.AndroidHints {
	return entity.AndroidHints{
		ChannelID:             channelID,
		Priority:              entity.NotificationPriorityHigh,
		Icon:                  notificationIcon,
		Color:                 color,
		DefaultSound:          true,
		DefaultVibrateTimings: true,
	}
}

func apnsHints(category string) entity.APNSHints {
	return entity.APNSHints{
		Badge:    1,
		Sound:    "default",
		Category: category,
	}
}
