package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// Composite weights over the four stage scores. They sum to 1.0.
const (
	resumeWeight = 0.2
	textWeight   = 0.25
	voiceWeight  = 0.25
	videoWeight  = 0.3
)

// Status thresholds over the composite score.
const (
	passThreshold    = 70.0
	pendingThreshold = 50.0
)

// AggregatorService computes the weighted final evaluation from the
// latest score of each stage. Every computation appends a FinalResult
// row, keeping a full aggregation history.
type AggregatorService interface {
	ComputeFinal(userID uuid.UUID) (*models.FinalScoreResponse, error)
	History(userID uuid.UUID) ([]models.FinalResult, error)
}

type aggregatorService struct {
	testResultRepo  repositories.TestResultRepository
	finalResultRepo repositories.FinalResultRepository
}

func NewAggregatorService(
	testResultRepo repositories.TestResultRepository,
	finalResultRepo repositories.FinalResultRepository,
) AggregatorService {
	return &aggregatorService{
		testResultRepo:  testResultRepo,
		finalResultRepo: finalResultRepo,
	}
}

// ComputeFinal implements AggregatorService.
func (s *aggregatorService) ComputeFinal(userID uuid.UUID) (*models.FinalScoreResponse, error) {
	scores, err := s.latestScores(userID)
	if err != nil {
		return nil, err
	}

	overall := ComputeOverallScore(scores)
	status, statusMessage, recommendations := ClassifyStatus(overall)
	feedback := GenerateDetailedFeedback(scores)

	result := &models.FinalResult{
		UserID:       userID,
		ResumeScore:  scores.Resume,
		TextScore:    scores.Text,
		VoiceScore:   scores.Voice,
		VideoScore:   scores.Video,
		OverallScore: overall,
		Status:       status,
		Feedback:     feedback,
		CreatedAt:    time.Now(),
	}

	if err := s.finalResultRepo.Create(result); err != nil {
		return nil, err
	}

	return &models.FinalScoreResponse{
		Success:         true,
		Scores:          scores,
		OverallScore:    round2(overall),
		Status:          status,
		StatusMessage:   statusMessage,
		Feedback:        feedback,
		Recommendations: recommendations,
		ChartData:       PrepareChartData(scores, overall),
	}, nil
}

// History implements AggregatorService.
func (s *aggregatorService) History(userID uuid.UUID) ([]models.FinalResult, error) {
	return s.finalResultRepo.FindByUser(userID)
}

// latestScores reads the most recent result per stage, defaulting to 0
// for stages without a recorded result.
func (s *aggregatorService) latestScores(userID uuid.UUID) (models.StageScores, error) {
	var scores models.StageScores

	for _, entry := range []struct {
		stage models.Stage
		dest  *float64
	}{
		{models.StageResume, &scores.Resume},
		{models.StageText, &scores.Text},
		{models.StageVoice, &scores.Voice},
		{models.StageVideo, &scores.Video},
	} {
		result, err := s.testResultRepo.FindLatestByUserAndType(userID, entry.stage)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return scores, err
		}
		*entry.dest = result.Score
	}

	return scores, nil
}

// ComputeOverallScore applies the composite weights.
func ComputeOverallScore(scores models.StageScores) float64 {
	return scores.Resume*resumeWeight +
		scores.Text*textWeight +
		scores.Voice*voiceWeight +
		scores.Video*videoWeight
}

// ClassifyStatus maps the composite score to a status with its fixed
// message and recommendation list.
func ClassifyStatus(overall float64) (models.ResultStatus, string, []string) {
	switch {
	case overall >= passThreshold:
		return models.StatusPass,
			"Congratulations! You are ready for real interviews.",
			[]string{
				"Practice with different interviewers",
				"Research company-specific questions",
				"Prepare questions to ask the interviewer",
			}
	case overall >= pendingThreshold:
		return models.StatusPending,
			"Good progress! You need more practice.",
			[]string{
				"Focus on your weakest area",
				"Practice daily for 30 minutes",
				"Record and review your practice sessions",
			}
	default:
		return models.StatusFail,
			"Needs significant improvement. Keep practicing!",
			[]string{
				"Start with basic interview questions",
				"Work on confidence and communication",
				"Seek feedback from mentors",
				"Practice in front of a mirror",
			}
	}
}

// GenerateDetailedFeedback builds one narrative sentence per stage
// from its 80/60 threshold ladder, joined with blank lines.
func GenerateDetailedFeedback(scores models.StageScores) string {
	var feedback []string

	if scores.Resume >= 80 {
		feedback = append(feedback, "Resume: Excellent! Your resume is well-structured and highlights key skills.")
	} else if scores.Resume >= 60 {
		feedback = append(feedback, "Resume: Good. Consider adding more quantifiable achievements.")
	} else {
		feedback = append(feedback, "Resume: Needs improvement. Focus on formatting and content clarity.")
	}

	if scores.Text >= 80 {
		feedback = append(feedback, "Written Communication: Excellent grammar and clarity in written responses.")
	} else if scores.Text >= 60 {
		feedback = append(feedback, "Written Communication: Good. Work on vocabulary and sentence structure.")
	} else {
		feedback = append(feedback, "Written Communication: Needs practice. Focus on grammar and organization.")
	}

	if scores.Voice >= 80 {
		feedback = append(feedback, "Verbal Communication: Clear, confident speech with good fluency.")
	} else if scores.Voice >= 60 {
		feedback = append(feedback, "Verbal Communication: Good. Work on pace and pronunciation.")
	} else {
		feedback = append(feedback, "Verbal Communication: Needs significant improvement in clarity and confidence.")
	}

	if scores.Video >= 80 {
		feedback = append(feedback, "Presentation Skills: Excellent body language, eye contact, and professionalism.")
	} else if scores.Video >= 60 {
		feedback = append(feedback, "Presentation Skills: Good. Improve eye contact and posture.")
	} else {
		feedback = append(feedback, "Presentation Skills: Focus on body language, eye contact, and professional presence.")
	}

	return strings.Join(feedback, "\n\n")
}

// PrepareChartData returns the chart-ready series the dashboard renders.
func PrepareChartData(scores models.StageScores, overall float64) models.ChartData {
	return models.ChartData{
		Labels: []string{"Resume", "Text Test", "Voice Test", "Video Test", "Overall"},
		Datasets: []models.ChartDataset{
			{
				Label: "Scores",
				Data: []float64{
					scores.Resume,
					scores.Text,
					scores.Voice,
					scores.Video,
					overall,
				},
				BackgroundColor: []string{
					"rgba(54, 162, 235, 0.6)",
					"rgba(75, 192, 192, 0.6)",
					"rgba(255, 206, 86, 0.6)",
					"rgba(255, 99, 132, 0.6)",
					"rgba(153, 102, 255, 0.6)",
				},
			},
		},
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
