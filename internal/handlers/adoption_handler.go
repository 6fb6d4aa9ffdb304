package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/middleware"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
)

type AdoptionHandler struct {
	adoptionService *services.AdoptionService
}

func NewAdoptionHandler(adoptionService *services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

// Apply handles POST /pets/:id/apply
func (h *AdoptionHandler) Apply(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pet ID")
	}

	request, err := h.adoptionService.Apply(petID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(*request))
}

// Approve handles POST /requests/:id/approve
func (h *AdoptionHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.adoptionService.Approve)
}

// Reject handles POST /requests/:id/reject
func (h *AdoptionHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.adoptionService.Reject)
}

func (h *AdoptionHandler) decide(c *fiber.Ctx, op func(requestID, actorID uuid.UUID) (*models.AdoptionRequest, error)) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	request, err := op(requestID, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toRequestResponse(*request))
}

// Applicants handles GET /pets/:id/applicants (owner only).
func (h *AdoptionHandler) Applicants(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pet ID")
	}

	requests, err := h.adoptionService.Applicants(petID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.AdoptionRequestResponse, len(requests))
	for i, r := range requests {
		resp[i] = toRequestResponse(r)
	}
	return c.JSON(fiber.Map{"applicants": resp})
}

// Stories handles GET /success-stories (public).
func (h *AdoptionHandler) Stories(c *fiber.Ctx) error {
	stories, err := h.adoptionService.Stories()
	if err != nil {
		return serviceError(c, err)
	}

	resp := make([]dto.SuccessStoryResponse, len(stories))
	for i, s := range stories {
		resp[i] = toStoryResponse(s)
	}
	return c.JSON(fiber.Map{"stories": resp})
}
