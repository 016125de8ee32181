package models

import "time"

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of the assistant transcript. OwnerKey ties the
// transcript to a logged-in user or an anonymous chat cookie.
type ChatMessage struct {
	ID        int64     `json:"id"`
	OwnerKey  string    `json:"-"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"timestamp"`
}
