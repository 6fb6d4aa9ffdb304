package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/zeetechinnovations/pet-adoption-portal/internal/config"
	"github.com/zeetechinnovations/pet-adoption-portal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models, then adds the partial unique index
// that closes the duplicate-application race: at most one non-rejected
// adoption request per (pet, adopter).
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.Pet{},
		&models.AdoptionRequest{},
		&models.SuccessStory{},
		&models.Message{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	return DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_adoption_requests_active
		 ON adoption_requests (pet_id, adopter_id)
		 WHERE status <> 'rejected'`,
	).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
