package entity

const (
	RecipientRoleUser  = "user"
	RecipientRoleAgent = "agent"
)

// Recipient is the read-only slice of a profile needed to deliver a push.
type Recipient struct {
	ID       string
	Role     string
	FCMToken string
	FullName string
}

func (r *Recipient) HasToken() bool {
	return r != nil && r.FCMToken != ""
}
