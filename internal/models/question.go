package models

import "time"

type Question struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Category  string    `gorm:"type:text" json:"category"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// DefaultQuestions is the question bank seeded on first migration.
var DefaultQuestions = []Question{
	{Question: "Tell me about yourself and your background.", Category: "general"},
	{Question: "What are your greatest strengths and how do they apply to this role?", Category: "general"},
	{Question: "Describe a challenging project you worked on and how you handled it.", Category: "behavioral"},
	{Question: "Why do you want to work for this company?", Category: "motivation"},
	{Question: "Where do you see yourself in five years?", Category: "motivation"},
}
