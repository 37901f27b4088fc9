package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type TestResultRepository interface {
	Create(result *models.TestResult) error
	FindLatestByUserAndType(userID uuid.UUID, testType models.Stage) (*models.TestResult, error)
	FindByUser(userID uuid.UUID) ([]models.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

// Create implements TestResultRepository.
func (r *testResultRepository) Create(result *models.TestResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create test result: %w", err)
	}

	return nil
}

// FindLatestByUserAndType implements TestResultRepository. The row ID
// breaks created_at ties so "latest" stays deterministic when two
// submissions land in the same instant.
func (r *testResultRepository) FindLatestByUserAndType(userID uuid.UUID, testType models.Stage) (*models.TestResult, error) {
	var result models.TestResult
	err := r.db.
		Where("user_id = ? AND test_type = ?", userID, testType).
		Order("created_at DESC, id DESC").
		First(&result).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("test result not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find test result: %w", err)
	}

	return &result, nil
}

// FindByUser implements TestResultRepository.
func (r *testResultRepository) FindByUser(userID uuid.UUID) ([]models.TestResult, error) {
	var results []models.TestResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find test results: %w", err)
	}

	return results, nil
}
