package models

import (
	"time"

	"github.com/google/uuid"
)

// Valid pet types, mirrored by the create form.
var PetTypes = []string{
	"dog", "cat", "rabbit", "hamster", "birds",
	"fish", "turtle", "snake", "horse", "other",
}

func ValidPetType(t string) bool {
	for _, pt := range PetTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Pet is a listed animal. PhotoURL points into the configured storage backend
// and may be empty.
type Pet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Breed      string    `gorm:"size:100" json:"breed"`
	Age        int       `gorm:"not null" json:"age"`
	Vaccinated bool      `gorm:"default:false" json:"vaccinated"`
	PhotoURL   string    `gorm:"size:512" json:"photo_url,omitempty"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	PetType    string    `gorm:"size:10;not null;index" json:"pet_type"`
	Location   string    `gorm:"size:100;index" json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}
