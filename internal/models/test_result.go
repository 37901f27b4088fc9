package models

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is an append-only score log. Multiple rows per user per
// stage are allowed; "latest" is most recent created_at with the
// auto-increment ID breaking timestamp ties.
type TestResult struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TestType  Stage     `gorm:"type:text;not null;index" json:"test_type"`
	Score     float64   `gorm:"not null" json:"score"`
	Feedback  string    `gorm:"type:text" json:"feedback"`
	Duration  int       `gorm:"default:0" json:"duration"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

func (TestResult) TableName() string {
	return "tests"
}
