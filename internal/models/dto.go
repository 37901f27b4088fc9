package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name"`
}

type TextTestRequest struct {
	UserID  string          `json:"user_id" validate:"required,uuid"`
	Answers map[uint]string `json:"answers" validate:"required"`
}

type VideoTestRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Duration int    `json:"duration"`
}

// VideoSubScores are the four body-language sub-scores a video session
// is rated on.
type VideoSubScores struct {
	EyeContactScore float64 `json:"eye_contact_score"`
	PostureScore    float64 `json:"posture_score"`
	GestureScore    float64 `json:"gesture_score"`
	ExpressionScore float64 `json:"expression_score"`
}

// StageScores holds the latest score per stage, zero when a stage has
// no recorded result yet.
type StageScores struct {
	Resume float64 `json:"resume"`
	Text   float64 `json:"text"`
	Voice  float64 `json:"voice"`
	Video  float64 `json:"video"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type FinalScoreResponse struct {
	Success         bool         `json:"success"`
	Scores          StageScores  `json:"scores"`
	OverallScore    float64      `json:"overall_score"`
	Status          ResultStatus `json:"status"`
	StatusMessage   string       `json:"status_message"`
	Feedback        string       `json:"feedback"`
	Recommendations []string     `json:"recommendations"`
	ChartData       ChartData    `json:"chart_data"`
}
