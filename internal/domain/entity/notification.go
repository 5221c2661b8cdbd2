package entity

import (
	"fmt"
	"time"
)

const (
	NotificationTypeAgentBid      = "agent_bid"
	NotificationTypeCartItemAdded = "cart_item_added"

	NotificationActionViewBid  = "view_bid"
	NotificationActionViewCart = "view_cart"

	NotificationPriorityHigh = "high"
)

// Notification is the canonical event record. The same values are flattened
// to strings for the push payload.
type Notification struct {
	NotificationID string  `json:"notificationId" firestore:"notificationId"`
	Type           string  `json:"type" firestore:"type"`
	UserID         string  `json:"userId" firestore:"userId"`
	UserName       string  `json:"userName" firestore:"userName"`
	ProductID      string  `json:"productId" firestore:"productId"`
	ProductName    string  `json:"productName" firestore:"productName"`
	ProductPrice   float64 `json:"productPrice" firestore:"productPrice"`
	ProductImage   string  `json:"productImage,omitempty" firestore:"productImage,omitempty"`
	AgentID        string  `json:"agentId" firestore:"agentId"`
	AgentName      string  `json:"agentName" firestore:"agentName"`
	Quantity       int     `json:"quantity" firestore:"quantity"`
	Timestamp      string  `json:"timestamp" firestore:"timestamp"`
	Action         string  `json:"action" firestore:"action"`

	// agent_bid only
	BidAmount      float64 `json:"bidAmount,omitempty" firestore:"bidAmount,omitempty"`
	ExpiresAt      string  `json:"expiresAt,omitempty" firestore:"expiresAt,omitempty"`
	ShowBidDetails bool    `json:"showBidDetails,omitempty" firestore:"showBidDetails,omitempty"`
}

// AgentNotification is the inbox copy kept under the agent's profile for
// in-app retrieval. The app flips IsRead.
type AgentNotification struct {
	ID        string       `json:"id" firestore:"id"`
	Title     string       `json:"title" firestore:"title"`
	Body      string       `json:"body" firestore:"body"`
	Type      string       `json:"type" firestore:"type"`
	Priority  string       `json:"priority" firestore:"priority"`
	IsRead    bool         `json:"isRead" firestore:"isRead"`
	CreatedAt time.Time    `json:"createdAt" firestore:"createdAt"`
	Data      Notification `json:"data" firestore:"data"`
}

func BidNotificationID(agentID, productID string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%d", NotificationTypeAgentBid, agentID, productID, at.UnixMilli())
}

func CartNotificationID(userID, productID string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%d", NotificationTypeCartItemAdded, userID, productID, at.UnixMilli())
}
