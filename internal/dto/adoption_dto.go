package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name,omitempty"`
	AdopterID   uuid.UUID `json:"adopter_id"`
	AdopterName string    `json:"adopter_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SuccessStoryResponse struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name,omitempty"`
	AdopterID   uuid.UUID `json:"adopter_id"`
	AdopterName string    `json:"adopter_name,omitempty"`
	Story       string    `json:"story"`
	CreatedAt   time.Time `json:"created_at"`
}
