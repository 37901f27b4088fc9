package models

import (
	"time"

	"github.com/google/uuid"
)

type ResultStatus string

const (
	StatusPass    ResultStatus = "pass"
	StatusPending ResultStatus = "pending"
	StatusFail    ResultStatus = "fail"
)

// FinalResult is an append-only aggregation history: every call to the
// aggregator inserts a new row.
type FinalResult struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeScore  float64      `gorm:"not null" json:"resume_score"`
	TextScore    float64      `gorm:"not null" json:"text_score"`
	VoiceScore   float64      `gorm:"not null" json:"voice_score"`
	VideoScore   float64      `gorm:"not null" json:"video_score"`
	OverallScore float64      `gorm:"not null" json:"overall_score"`
	Status       ResultStatus `gorm:"type:text;not null" json:"status"`
	Feedback     string       `gorm:"type:text" json:"feedback"`
	CreatedAt    time.Time    `gorm:"type:timestamp" json:"created_at"`
}

func (FinalResult) TableName() string {
	return "results"
}
