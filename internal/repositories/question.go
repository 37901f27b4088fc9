package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"interview-coach/internal/models"
)

type QuestionRepository interface {
	FindByID(id uint) (*models.Question, error)
	FindActive() ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindByID implements QuestionRepository.
func (r *questionRepository) FindByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("question not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	return &question, nil
}

// FindActive implements QuestionRepository.
func (r *questionRepository) FindActive() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&questions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}

	return questions, nil
}
