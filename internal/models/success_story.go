package models

import (
	"time"

	"github.com/google/uuid"
)

// SuccessStory is created automatically when an adoption request is approved.
type SuccessStory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	AdopterID uuid.UUID `gorm:"type:uuid;not null;index" json:"adopter_id"`
	Story     string    `gorm:"type:text" json:"story"`
	CreatedAt time.Time `json:"created_at"`
	Pet       Pet       `gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE" json:"pet,omitempty"`
	Adopter   User      `gorm:"foreignKey:AdopterID;constraint:OnDelete:CASCADE" json:"adopter,omitempty"`
}
