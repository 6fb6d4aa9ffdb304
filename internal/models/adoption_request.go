package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// AdoptionRequest records one user's intent to adopt a pet. Status moves out
// of pending exactly once (approve or reject); requests are never deleted by
// the application.
type AdoptionRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	AdopterID uuid.UUID `gorm:"type:uuid;not null;index" json:"adopter_id"`
	Status    string    `gorm:"size:10;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Pet       Pet       `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"pet,omitempty"`
	Adopter   User      `gorm:"foreignKey:AdopterID;constraint:OnDelete:CASCADE" json:"adopter,omitempty"`
}
