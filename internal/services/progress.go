package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// ProgressService tracks each user's position in the assessment
// pipeline. Stages may be submitted out of order; the tracker records
// completions without enforcing prerequisites, and the stage pointer
// only ever moves forward.
type ProgressService interface {
	GetOrCreate(userID uuid.UUID) (*models.UserProgress, error)
	Advance(userID uuid.UUID, completedStage models.Stage) (*models.UserProgress, error)
}

type progressService struct {
	progressRepo repositories.ProgressRepository
}

func NewProgressService(progressRepo repositories.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

// GetOrCreate implements ProgressService.
func (s *progressService) GetOrCreate(userID uuid.UUID) (*models.UserProgress, error) {
	progress, err := s.progressRepo.FindByUserID(userID)
	if err == nil {
		return progress, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = &models.UserProgress{
		UserID:       userID,
		CurrentStage: models.StageResume,
		LastActivity: time.Now(),
	}

	if err := s.progressRepo.Create(progress); err != nil {
		return nil, err
	}

	return progress, nil
}

// Advance implements ProgressService. Marks completedStage done and
// moves the stage pointer to its successor unless the pointer is
// already further along, so repeating an earlier stage never rewinds
// the pipeline.
func (s *progressService) Advance(userID uuid.UUID, completedStage models.Stage) (*models.UserProgress, error) {
	if !completedStage.IsTestStage() {
		return nil, fmt.Errorf("cannot advance past unknown stage: %s", completedStage)
	}

	progress, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	switch completedStage {
	case models.StageResume:
		progress.HasUploadedResume = true
	case models.StageText:
		progress.HasCompletedTextTest = true
	case models.StageVoice:
		progress.HasCompletedVoiceTest = true
	case models.StageVideo:
		progress.HasCompletedVideoTest = true
	}

	if next := completedStage.Next(); next.Rank() > progress.CurrentStage.Rank() {
		progress.CurrentStage = next
	}
	progress.LastActivity = time.Now()

	if err := s.progressRepo.Save(progress); err != nil {
		return nil, err
	}

	return progress, nil
}
