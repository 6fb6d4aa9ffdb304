package services

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/storage"
	"gorm.io/gorm"
)

// Photo normalization: every upload becomes an 800x800 JPEG at quality 85.
const (
	photoSize    = 800
	photoQuality = 85
)

type PetService struct {
	db      *gorm.DB
	storage storage.Storage
}

func NewPetService(db *gorm.DB, store storage.Storage) *PetService {
	return &PetService{db: db, storage: store}
}

// PetListing is a pet together with its derived adoption state.
type PetListing struct {
	models.Pet
	IsAdopted bool
}

type CreatePetInput struct {
	Name       string
	Breed      string
	Age        int
	Vaccinated bool
	PetType    string
	Location   string
}

func (s *PetService) Create(ownerID uuid.UUID, input CreatePetInput, photo *multipart.FileHeader) (*models.Pet, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("pet name is required")
	}
	if input.Age < 0 {
		return nil, errors.New("age cannot be negative")
	}
	if !models.ValidPetType(input.PetType) {
		return nil, fmt.Errorf("invalid pet type %q", input.PetType)
	}

	pet := models.Pet{
		ID:         uuid.New(),
		Name:       input.Name,
		Breed:      input.Breed,
		Age:        input.Age,
		Vaccinated: input.Vaccinated,
		OwnerID:    ownerID,
		PetType:    input.PetType,
		Location:   input.Location,
	}

	if photo != nil {
		url, err := s.storePhoto(pet.ID, photo)
		if err != nil {
			return nil, err
		}
		pet.PhotoURL = url
	}

	if err := s.db.Create(&pet).Error; err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	return &pet, nil
}

// List returns pets filtered by exact type and case-insensitive location
// substring, newest first, with derived adoption state.
func (s *PetService) List(petType, location string) ([]PetListing, error) {
	query := s.db.Model(&models.Pet{}).Preload("Owner")
	if petType != "" {
		query = query.Where("pet_type = ?", petType)
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var pets []models.Pet
	if err := query.Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, err
	}

	adopted, err := s.adoptedSet(pets)
	if err != nil {
		return nil, err
	}

	listings := make([]PetListing, len(pets))
	for i, p := range pets {
		listings[i] = PetListing{Pet: p, IsAdopted: adopted[p.ID]}
	}
	return listings, nil
}

func (s *PetService) Get(petID uuid.UUID) (*PetListing, error) {
	var pet models.Pet
	if err := s.db.Preload("Owner").First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	adopted, err := s.IsAdopted(petID)
	if err != nil {
		return nil, err
	}
	return &PetListing{Pet: pet, IsAdopted: adopted}, nil
}

// IsAdopted is true iff at least one approved adoption request exists for
// the pet.
func (s *PetService) IsAdopted(petID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("pet_id = ? AND status = ?", petID, models.RequestApproved).
		Count(&count).Error
	return count > 0, err
}

// Dashboard collects the caller's owned pets, their own applications, and
// incoming requests on pets they own.
type Dashboard struct {
	OwnedPets        []PetListing
	MyRequests       []models.AdoptionRequest
	IncomingRequests []models.AdoptionRequest
}

func (s *PetService) Dashboard(userID uuid.UUID) (*Dashboard, error) {
	var owned []models.Pet
	if err := s.db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&owned).Error; err != nil {
		return nil, err
	}

	adopted, err := s.adoptedSet(owned)
	if err != nil {
		return nil, err
	}
	listings := make([]PetListing, len(owned))
	for i, p := range owned {
		listings[i] = PetListing{Pet: p, IsAdopted: adopted[p.ID]}
	}

	var mine []models.AdoptionRequest
	if err := s.db.Preload("Pet").Where("adopter_id = ?", userID).
		Order("created_at DESC").Find(&mine).Error; err != nil {
		return nil, err
	}

	var incoming []models.AdoptionRequest
	if err := s.db.Preload("Pet").Preload("Adopter").
		Joins("JOIN pets ON pets.id = adoption_requests.pet_id").
		Where("pets.owner_id = ?", userID).
		Order("adoption_requests.created_at DESC").
		Find(&incoming).Error; err != nil {
		return nil, err
	}

	return &Dashboard{OwnedPets: listings, MyRequests: mine, IncomingRequests: incoming}, nil
}

func (s *PetService) adoptedSet(pets []models.Pet) (map[uuid.UUID]bool, error) {
	if len(pets) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	ids := make([]uuid.UUID, len(pets))
	for i, p := range pets {
		ids[i] = p.ID
	}

	var adoptedIDs []uuid.UUID
	err := s.db.Model(&models.AdoptionRequest{}).
		Where("pet_id IN ? AND status = ?", ids, models.RequestApproved).
		Distinct().Pluck("pet_id", &adoptedIDs).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]bool, len(adoptedIDs))
	for _, id := range adoptedIDs {
		set[id] = true
	}
	return set, nil
}

func (s *PetService) storePhoto(petID uuid.UUID, photo *multipart.FileHeader) (string, error) {
	f, err := photo.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	resized := imaging.Resize(img, photoSize, photoSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(photoQuality)); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	path := fmt.Sprintf("pets/%s.jpg", petID)
	if err := s.storage.Save(path, &buf); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	return s.storage.URL(path), nil
}
