package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type ProgressRepository interface {
	Create(progress *models.UserProgress) error
	FindByUserID(userID uuid.UUID) (*models.UserProgress, error)
	Save(progress *models.UserProgress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create implements ProgressRepository.
func (r *progressRepository) Create(progress *models.UserProgress) error {
	if err := r.db.Create(progress).Error; err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}

	return nil
}

// FindByUserID implements ProgressRepository.
func (r *progressRepository) FindByUserID(userID uuid.UUID) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := r.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("progress not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find progress: %w", err)
	}

	return &progress, nil
}

// Save implements ProgressRepository.
func (r *progressRepository) Save(progress *models.UserProgress) error {
	if err := r.db.Save(progress).Error; err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}
