package entity

import (
	"fmt"
	"time"
)

const (
	BidStatusPending = "pending"

	// BidValidity is how long an offer stays applicable at checkout.
	BidValidity = 24 * time.Hour
)

// TimestampLayout matches the ISO strings the mobile client reads back from
// both stores (UTC, millisecond precision).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Bid struct {
	AgentID      string  `json:"agentId" firestore:"agentId"`
	AgentName    string  `json:"agentName" firestore:"agentName"`
	UserID       string  `json:"userId" firestore:"userId"`
	UserName     string  `json:"userName" firestore:"userName"`
	ProductID    string  `json:"productId" firestore:"productId"`
	ProductName  string  `json:"productName" firestore:"productName"`
	ProductPrice float64 `json:"productPrice" firestore:"productPrice"`
	BidAmount    float64 `json:"bidAmount" firestore:"bidAmount"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	Status       string  `json:"status" firestore:"status"`
	Validity     string  `json:"validity" firestore:"validity"`
	CreatedAt    string  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    string  `json:"updatedAt" firestore:"updatedAt"`
}

// BidID is unique per agent, product and millisecond only; concurrent
// identical bids inside one millisecond share an id.
func BidID(agentID, productID string, at time.Time) string {
	return fmt.Sprintf("bid_%s_%s_%d", agentID, productID, at.UnixMilli())
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
