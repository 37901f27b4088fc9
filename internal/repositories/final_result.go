package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type FinalResultRepository interface {
	Create(result *models.FinalResult) error
	FindByUser(userID uuid.UUID) ([]models.FinalResult, error)
}

type finalResultRepository struct {
	db *gorm.DB
}

func NewFinalResultRepository(db *gorm.DB) FinalResultRepository {
	return &finalResultRepository{db: db}
}

// Create implements FinalResultRepository. Results are an append-only
// history; every aggregation inserts a new row.
func (r *finalResultRepository) Create(result *models.FinalResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create final result: %w", err)
	}

	return nil
}

// FindByUser implements FinalResultRepository.
func (r *finalResultRepository) FindByUser(userID uuid.UUID) ([]models.FinalResult, error) {
	var results []models.FinalResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find final results: %w", err)
	}

	return results, nil
}
