package models

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to a per-pet conversation between the owner and an adopter.
// Thread listings order pinned messages first, then by creation time ascending.
type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiver_id"`
	PetID      uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsPinned   bool      `gorm:"default:false" json:"is_pinned"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Sender     User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
	Pet        Pet       `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"-"`
}
