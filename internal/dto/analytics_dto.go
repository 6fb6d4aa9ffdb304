package dto

import "github.com/google/uuid"

type PetTypeCount struct {
	PetType string `json:"pet_type"`
	Count   int64  `json:"count"`
}

type RequestStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type UserActivity struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PetCount     int64     `json:"pet_count"`
	RequestCount int64     `json:"request_count"`
}

type AnalyticsResponse struct {
	PetTypes        []PetTypeCount       `json:"pet_types"`
	RequestStatuses []RequestStatusCount `json:"request_statuses"`
	TopUsers        []UserActivity       `json:"top_users"`
}
