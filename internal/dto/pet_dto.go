package dto

import (
	"time"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Breed      string    `json:"breed"`
	Age        int       `json:"age"`
	Vaccinated bool      `json:"vaccinated"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerName  string    `json:"owner_name,omitempty"`
	PetType    string    `json:"pet_type"`
	Location   string    `json:"location"`
	IsAdopted  bool      `json:"is_adopted"`
	CreatedAt  time.Time `json:"created_at"`
}

type DashboardResponse struct {
	OwnedPets        []PetResponse             `json:"owned_pets"`
	MyRequests       []AdoptionRequestResponse `json:"my_requests"`
	IncomingRequests []AdoptionRequestResponse `json:"incoming_requests"`
}
