package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"interview-coach/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Database migration completed")

	return db, nil
}

// Migrate runs the schema migration and seeds the question bank when
// it is empty. Shared with the test setup, which runs it on sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.TestResult{},
		&models.Resume{},
		&models.FinalResult{},
		&models.Question{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}

	if count == 0 {
		questions := make([]models.Question, len(models.DefaultQuestions))
		copy(questions, models.DefaultQuestions)
		if err := db.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}
	}

	return nil
}
