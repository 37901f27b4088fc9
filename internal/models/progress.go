package models

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one of the assessment phases. StageResults is only ever a
// progress pointer value, never a test type.
type Stage string

const (
	StageResume  Stage = "resume"
	StageText    Stage = "text"
	StageVoice   Stage = "voice"
	StageVideo   Stage = "video"
	StageResults Stage = "results"
)

var stageOrder = []Stage{StageResume, StageText, StageVoice, StageVideo, StageResults}

// Rank returns the stage's position in the canonical order, or -1 for
// an unknown stage.
func (s Stage) Rank() int {
	for i, stage := range stageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// Next returns the stage that follows s in the canonical order.
// StageResults is terminal.
func (s Stage) Next() Stage {
	rank := s.Rank()
	if rank < 0 || rank >= len(stageOrder)-1 {
		return StageResults
	}
	return stageOrder[rank+1]
}

// IsTestStage reports whether s names one of the four scored stages.
func (s Stage) IsTestStage() bool {
	switch s {
	case StageResume, StageText, StageVoice, StageVideo:
		return true
	}
	return false
}

type UserProgress struct {
	UserID                uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	CurrentStage          Stage     `gorm:"type:text;not null;default:'resume'" json:"current_test_type"`
	HasUploadedResume     bool      `gorm:"not null;default:false" json:"has_uploaded_resume"`
	HasCompletedTextTest  bool      `gorm:"not null;default:false" json:"has_completed_text_test"`
	HasCompletedVoiceTest bool      `gorm:"not null;default:false" json:"has_completed_voice_test"`
	HasCompletedVideoTest bool      `gorm:"not null;default:false" json:"has_completed_video_test"`
	LastActivity          time.Time `gorm:"type:timestamp" json:"last_activity"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
