package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/middleware"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/services"
)

const maxPhotoSize = 10 * 1024 * 1024

type PetHandler struct {
	petService *services.PetService
}

func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// List handles GET /pets?pet_type=&location=
func (h *PetHandler) List(c *fiber.Ctx) error {
	listings, err := h.petService.List(c.Query("pet_type"), c.Query("location"))
	if err != nil {
		return serviceError(c, err)
	}

	pets := make([]dto.PetResponse, len(listings))
	for i, l := range listings {
		pets[i] = toPetResponse(l)
	}
	return c.JSON(fiber.Map{"pets": pets})
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pet ID")
	}

	listing, err := h.petService.Get(petID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toPetResponse(*listing))
}

// Create handles POST /pets as multipart/form-data; the caller becomes the
// owner and an optional photo is normalized before storage.
func (h *PetHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	age, err := strconv.Atoi(c.FormValue("age", "0"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid age")
	}

	input := services.CreatePetInput{
		Name:       c.FormValue("name"),
		Breed:      c.FormValue("breed"),
		Age:        age,
		Vaccinated: c.FormValue("vaccinated") == "true",
		PetType:    c.FormValue("pet_type"),
		Location:   c.FormValue("location"),
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		// Photo is optional.
		photo = nil
	}
	if photo != nil {
		if photo.Size > maxPhotoSize {
			return fail(c, fiber.StatusBadRequest, "Photo size must be less than 10MB")
		}
		contentType := photo.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return fail(c, fiber.StatusBadRequest, "Photo must be an image")
		}
	}

	pet, err := h.petService.Create(userID, input, photo)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(pet)
}

// Dashboard handles GET /dashboard for the authenticated user.
func (h *PetHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	dash, err := h.petService.Dashboard(userID)
	if err != nil {
		return serviceError(c, err)
	}

	resp := dto.DashboardResponse{
		OwnedPets:        make([]dto.PetResponse, len(dash.OwnedPets)),
		MyRequests:       make([]dto.AdoptionRequestResponse, len(dash.MyRequests)),
		IncomingRequests: make([]dto.AdoptionRequestResponse, len(dash.IncomingRequests)),
	}
	for i, p := range dash.OwnedPets {
		resp.OwnedPets[i] = toPetResponse(p)
	}
	for i, r := range dash.MyRequests {
		resp.MyRequests[i] = toRequestResponse(r)
	}
	for i, r := range dash.IncomingRequests {
		resp.IncomingRequests[i] = toRequestResponse(r)
	}
	return c.JSON(resp)
}
