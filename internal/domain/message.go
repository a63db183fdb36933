package domain

import "time"

// Message is a timestamped text entry attached to exactly one Group.
// Sender identity is free text, not a reference to a member row.
// Messages may be deleted individually but are never updated.
type Message struct {
	ID         int64     `json:"id"`
	GroupID    int64     `json:"groupId"`
	SenderName string    `json:"senderName"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}
