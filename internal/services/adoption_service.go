package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/metrics"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/notify"
	"gorm.io/gorm"
)

// The narrative every auto-generated success story starts with.
const defaultStory = "Adoption approved!"

type AdoptionService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

func NewAdoptionService(db *gorm.DB, notifier notify.Notifier) *AdoptionService {
	return &AdoptionService{db: db, notifier: notifier}
}

// Apply files an adoption request by actor for the given pet. The owner
// cannot apply for their own pet, and a second application while one is
// still pending or approved is rejected.
func (s *AdoptionService) Apply(petID, actorID uuid.UUID) (*models.AdoptionRequest, error) {
	var pet models.Pet
	if err := s.db.Preload("Owner").First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if pet.OwnerID == actorID {
		return nil, ErrOwnPet
	}

	var active int64
	if err := s.db.Model(&models.AdoptionRequest{}).
		Where("pet_id = ? AND adopter_id = ? AND status <> ?", petID, actorID, models.RequestRejected).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrDuplicateApplication
	}

	var adopter models.User
	if err := s.db.First(&adopter, "id = ?", actorID).Error; err != nil {
		return nil, fmt.Errorf("adopter not found: %w", err)
	}

	request := models.AdoptionRequest{
		ID:        uuid.New(),
		PetID:     petID,
		AdopterID: actorID,
		Status:    models.RequestPending,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create adoption request: %w", err)
	}

	subject, body := notify.AdoptionRequested(pet.Name, adopter.Name)
	if err := s.notifier.Send(pet.Owner.Email, subject, body); err != nil {
		reportNotifyFailure("apply_adoption", err)
	}

	request.Pet = pet
	request.Adopter = adopter
	return &request, nil
}

// Approve transitions a pending request to approved, creates exactly one
// success story, and notifies the adopter. Only the pet owner may approve,
// and only a pending request can transition. Sibling requests for the same
// pet are left untouched.
func (s *AdoptionService) Approve(requestID, actorID uuid.UUID) (*models.AdoptionRequest, error) {
	request, err := s.decide(requestID, actorID, models.RequestApproved)
	if err != nil {
		return nil, err
	}

	metrics.AdoptionsApproved.Inc()

	subject, body := notify.AdoptionApproved(request.Pet.Name)
	if err := s.notifier.Send(request.Adopter.Email, subject, body); err != nil {
		reportNotifyFailure("approve_adoption", err)
	}
	return request, nil
}

// Reject is symmetric to Approve, without the success story.
func (s *AdoptionService) Reject(requestID, actorID uuid.UUID) (*models.AdoptionRequest, error) {
	request, err := s.decide(requestID, actorID, models.RequestRejected)
	if err != nil {
		return nil, err
	}

	subject, body := notify.AdoptionRejected(request.Pet.Name)
	if err := s.notifier.Send(request.Adopter.Email, subject, body); err != nil {
		reportNotifyFailure("reject_adoption", err)
	}
	return request, nil
}

func (s *AdoptionService) decide(requestID, actorID uuid.UUID, status string) (*models.AdoptionRequest, error) {
	var request models.AdoptionRequest
	if err := s.db.Preload("Pet").Preload("Adopter").First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if request.Pet.OwnerID != actorID {
		return nil, ErrForbidden
	}
	if request.Status != models.RequestPending {
		return nil, ErrNotPending
	}

	// The status change and the story are one atomic step, so an approval
	// observed by anyone always has its story.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", status).Error; err != nil {
			return err
		}
		if status != models.RequestApproved {
			return nil
		}
		return tx.Create(&models.SuccessStory{
			ID:        uuid.New(),
			PetID:     request.PetID,
			AdopterID: request.AdopterID,
			Story:     defaultStory,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update adoption request: %w", err)
	}

	request.Status = status
	return &request, nil
}

// Applicants lists all adoption requests for a pet; owner only.
func (s *AdoptionService) Applicants(petID, actorID uuid.UUID) ([]models.AdoptionRequest, error) {
	var pet models.Pet
	if err := s.db.First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pet.OwnerID != actorID {
		return nil, ErrForbidden
	}

	var requests []models.AdoptionRequest
	err := s.db.Preload("Adopter").Where("pet_id = ?", petID).
		Order("created_at ASC").Find(&requests).Error
	return requests, err
}

// Stories returns the public success story list, newest first.
func (s *AdoptionService) Stories() ([]models.SuccessStory, error) {
	var stories []models.SuccessStory
	err := s.db.Preload("Pet").Preload("Adopter").
		Order("created_at DESC").Find(&stories).Error
	return stories, err
}
