package services

import (
	"github.com/zeetechinnovations/pet-adoption-portal/internal/dto"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Overview assembles the admin dashboard: pets grouped by type, requests
// grouped by status, and the ten most active users ordered by pets owned.
func (s *AnalyticsService) Overview() (*dto.AnalyticsResponse, error) {
	petTypes, err := s.petTypeCounts()
	if err != nil {
		return nil, err
	}

	statuses, err := s.requestStatusCounts()
	if err != nil {
		return nil, err
	}

	topUsers, err := s.topUsers(10)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		PetTypes:        petTypes,
		RequestStatuses: statuses,
		TopUsers:        topUsers,
	}, nil
}

func (s *AnalyticsService) petTypeCounts() ([]dto.PetTypeCount, error) {
	var counts []dto.PetTypeCount
	err := s.db.Model(&models.Pet{}).
		Select("pet_type, count(*) as count").
		Group("pet_type").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (s *AnalyticsService) requestStatusCounts() ([]dto.RequestStatusCount, error) {
	var counts []dto.RequestStatusCount
	err := s.db.Model(&models.AdoptionRequest{}).
		Select("status, count(*) as count").
		Group("status").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (s *AnalyticsService) topUsers(limit int) ([]dto.UserActivity, error) {
	var users []dto.UserActivity
	err := s.db.Raw(`
		SELECT u.id AS user_id, u.email, u.name,
		       (SELECT COUNT(*) FROM pets p WHERE p.owner_id = u.id) AS pet_count,
		       (SELECT COUNT(*) FROM adoption_requests r WHERE r.adopter_id = u.id) AS request_count
		FROM users u
		WHERE u.deleted_at IS NULL
		ORDER BY pet_count DESC
		LIMIT ?`, limit).Scan(&users).Error
	return users, err
}
