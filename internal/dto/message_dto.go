package dto

import (
	"time"

	"github.com/google/uuid"
)

// Thread command actions.
const (
	ActionSend   = "send"
	ActionPin    = "pin"
	ActionUnpin  = "unpin"
	ActionDelete = "delete"
)

// ThreadCommand is the tagged request body for POST /pets/:id/messages.
// Content applies to "send"; MessageID to "pin", "unpin" and "delete".
type ThreadCommand struct {
	Action    string    `json:"action"`
	Content   string    `json:"content,omitempty"`
	MessageID uuid.UUID `json:"message_id,omitempty"`
}

type EditMessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	PetID      uuid.UUID `json:"pet_id"`
	Content    string    `json:"content"`
	IsPinned   bool      `json:"is_pinned"`
	CreatedAt  time.Time `json:"created_at"`
}

type ThreadResponse struct {
	Messages  []MessageResponse `json:"messages"`
	CanSend   bool              `json:"can_send"`
	Recipient *UserResponse     `json:"recipient,omitempty"`
	HasPinned bool              `json:"has_pinned"`
}
