package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.Pet{},
		&models.AdoptionRequest{},
		&models.SuccessStory{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
		ResetTokenExpiry: time.Hour,
		AppURL:           "http://localhost:8080",
	}
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

// fakeNotifier records deliveries; set failWith to exercise the failure path.
type fakeNotifier struct {
	sent     []sentEmail
	failWith error
}

func (f *fakeNotifier) Send(to, subject, body string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func createUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "x",
		Name:     name,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createPet(t *testing.T, db *gorm.DB, owner *models.User, name, petType, location string) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		ID:       uuid.New(),
		Name:     name,
		Breed:    "mixed",
		Age:      2,
		OwnerID:  owner.ID,
		PetType:  petType,
		Location: location,
	}
	if err := db.Create(pet).Error; err != nil {
		t.Fatalf("create pet %s: %v", name, err)
	}
	return pet
}

func createRequest(t *testing.T, db *gorm.DB, pet *models.Pet, adopter *models.User, status string) *models.AdoptionRequest {
	t.Helper()
	req := &models.AdoptionRequest{
		ID:        uuid.New(),
		PetID:     pet.ID,
		AdopterID: adopter.ID,
		Status:    status,
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("create adoption request: %v", err)
	}
	return req
}
