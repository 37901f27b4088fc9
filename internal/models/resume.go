package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume stores one analyzed upload. Skills, languages, categories,
// education and certifications are kept as JSON-encoded strings, the
// same shape the analyzer returned them in.
type Resume struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Filename             string    `gorm:"type:text" json:"filename"`
	OriginalFilename     string    `gorm:"type:text" json:"original_filename"`
	FilePath             string    `gorm:"type:text" json:"file_path"`
	FileSize             int64     `gorm:"default:0" json:"file_size"`
	FileType             string    `gorm:"type:text" json:"file_type"`
	Skills               string    `gorm:"type:text" json:"skills"`
	ProgrammingLanguages string    `gorm:"type:text" json:"programming_languages"`
	EducationLevel       string    `gorm:"type:text" json:"education_level"`
	ExperienceYears      float64   `gorm:"default:0" json:"experience_years"`
	Certifications       string    `gorm:"type:text" json:"certifications"`
	JobCategory          string    `gorm:"type:text" json:"job_category"`
	Score                float64   `gorm:"not null" json:"score"`
	AnalysisResult       string    `gorm:"type:text" json:"analysis_result"`
	CreatedAt            time.Time `gorm:"type:timestamp" json:"uploaded_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
