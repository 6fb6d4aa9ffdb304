package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
)

// validationErrs map to 400 with their message; everything unrecognized is a
// 500 with a generic body (details are logged, never leaked).
var validationErrs = []error{
	services.ErrDuplicateApplication,
	services.ErrNotPending,
	services.ErrCannotSend,
	services.ErrNoRecipient,
	services.ErrEmptyContent,
	services.ErrWeakPassword,
	services.ErrPasswordMismatch,
	services.ErrInvalidResetToken,
}

func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrOwnPet):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return fail(c, fiber.StatusConflict, err.Error())
	}

	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func toPetResponse(p services.PetListing) dto.PetResponse {
	return dto.PetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Breed:      p.Breed,
		Age:        p.Age,
		Vaccinated: p.Vaccinated,
		PhotoURL:   p.PhotoURL,
		OwnerID:    p.OwnerID,
		OwnerName:  p.Owner.Name,
		PetType:    p.PetType,
		Location:   p.Location,
		IsAdopted:  p.IsAdopted,
		CreatedAt:  p.CreatedAt,
	}
}

func toRequestResponse(r models.AdoptionRequest) dto.AdoptionRequestResponse {
	return dto.AdoptionRequestResponse{
		ID:          r.ID,
		PetID:       r.PetID,
		PetName:     r.Pet.Name,
		AdopterID:   r.AdopterID,
		AdopterName: r.Adopter.Name,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func toStoryResponse(s models.SuccessStory) dto.SuccessStoryResponse {
	return dto.SuccessStoryResponse{
		ID:          s.ID,
		PetID:       s.PetID,
		PetName:     s.Pet.Name,
		AdopterID:   s.AdopterID,
		AdopterName: s.Adopter.Name,
		Story:       s.Story,
		CreatedAt:   s.CreatedAt,
	}
}

func toMessageResponse(m models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		PetID:      m.PetID,
		Content:    m.Content,
		IsPinned:   m.IsPinned,
		CreatedAt:  m.CreatedAt,
	}
}
