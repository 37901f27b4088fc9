package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

func TestCompositeWeightsSumToOne(t *testing.T) {
	sum := resumeWeight + textWeight + voiceWeight + videoWeight
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestComputeOverallScore(t *testing.T) {
	scores := models.StageScores{Resume: 75, Text: 70, Voice: 72, Video: 85}

	// 0.2*75 + 0.25*70 + 0.25*72 + 0.3*85
	assert.InDelta(t, 76.0, ComputeOverallScore(scores), 1e-9)
}

func TestComputeOverallScoreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := models.StageScores{
			Resume: rapid.Float64Range(0, 100).Draw(t, "resume"),
			Text:   rapid.Float64Range(0, 100).Draw(t, "text"),
			Voice:  rapid.Float64Range(0, 100).Draw(t, "voice"),
			Video:  rapid.Float64Range(0, 100).Draw(t, "video"),
		}
		delta := rapid.Float64Range(0, 50).Draw(t, "delta")

		before := ComputeOverallScore(base)

		raised := []models.StageScores{base, base, base, base}
		raised[0].Resume += delta
		raised[1].Text += delta
		raised[2].Voice += delta
		raised[3].Video += delta

		for _, scores := range raised {
			assert.GreaterOrEqual(t, ComputeOverallScore(scores), before)
		}
	})
}

func TestClassifyStatusThresholds(t *testing.T) {
	tests := []struct {
		overall  float64
		status   models.ResultStatus
		message  string
		recCount int
	}{
		{overall: 100, status: models.StatusPass, message: "Congratulations! You are ready for real interviews.", recCount: 3},
		{overall: 70, status: models.StatusPass, message: "Congratulations! You are ready for real interviews.", recCount: 3},
		{overall: 69.99, status: models.StatusPending, message: "Good progress! You need more practice.", recCount: 3},
		{overall: 50, status: models.StatusPending, message: "Good progress! You need more practice.", recCount: 3},
		{overall: 49.99, status: models.StatusFail, message: "Needs significant improvement. Keep practicing!", recCount: 4},
		{overall: 0, status: models.StatusFail, message: "Needs significant improvement. Keep practicing!", recCount: 4},
	}

	for _, tt := range tests {
		status, message, recommendations := ClassifyStatus(tt.overall)
		assert.Equal(t, tt.status, status, "overall=%v", tt.overall)
		assert.Equal(t, tt.message, message, "overall=%v", tt.overall)
		assert.Len(t, recommendations, tt.recCount, "overall=%v", tt.overall)
	}
}

func TestClassifyStatusTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		overall := rapid.Float64Range(0, 100).Draw(t, "overall")

		status, message, recommendations := ClassifyStatus(overall)

		switch {
		case overall >= 70:
			assert.Equal(t, models.StatusPass, status)
		case overall >= 50:
			assert.Equal(t, models.StatusPending, status)
		default:
			assert.Equal(t, models.StatusFail, status)
		}
		assert.NotEmpty(t, message)
		assert.NotEmpty(t, recommendations)
	})
}

func TestGenerateDetailedFeedbackTiers(t *testing.T) {
	t.Run("all excellent", func(t *testing.T) {
		feedback := GenerateDetailedFeedback(models.StageScores{Resume: 90, Text: 85, Voice: 80, Video: 95})

		assert.Contains(t, feedback, "Resume: Excellent! Your resume is well-structured and highlights key skills.")
		assert.Contains(t, feedback, "Written Communication: Excellent grammar and clarity in written responses.")
		assert.Contains(t, feedback, "Verbal Communication: Clear, confident speech with good fluency.")
		assert.Contains(t, feedback, "Presentation Skills: Excellent body language, eye contact, and professionalism.")
	})

	t.Run("all good", func(t *testing.T) {
		feedback := GenerateDetailedFeedback(models.StageScores{Resume: 60, Text: 79, Voice: 60, Video: 70})

		assert.Contains(t, feedback, "Resume: Good. Consider adding more quantifiable achievements.")
		assert.Contains(t, feedback, "Written Communication: Good. Work on vocabulary and sentence structure.")
		assert.Contains(t, feedback, "Verbal Communication: Good. Work on pace and pronunciation.")
		assert.Contains(t, feedback, "Presentation Skills: Good. Improve eye contact and posture.")
	})

	t.Run("all weak", func(t *testing.T) {
		feedback := GenerateDetailedFeedback(models.StageScores{Resume: 59, Text: 30, Voice: 0, Video: 45})

		assert.Contains(t, feedback, "Resume: Needs improvement. Focus on formatting and content clarity.")
		assert.Contains(t, feedback, "Written Communication: Needs practice. Focus on grammar and organization.")
		assert.Contains(t, feedback, "Verbal Communication: Needs significant improvement in clarity and confidence.")
		assert.Contains(t, feedback, "Presentation Skills: Focus on body language, eye contact, and professional presence.")
	})

	t.Run("sections separated by blank lines", func(t *testing.T) {
		feedback := GenerateDetailedFeedback(models.StageScores{Resume: 90, Text: 90, Voice: 90, Video: 90})
		assert.Len(t, strings.Split(feedback, "\n\n"), 4)
	})
}

func TestPrepareChartData(t *testing.T) {
	scores := models.StageScores{Resume: 75, Text: 70, Voice: 72, Video: 85}
	chart := PrepareChartData(scores, 76)

	assert.Equal(t, []string{"Resume", "Text Test", "Voice Test", "Video Test", "Overall"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, "Scores", chart.Datasets[0].Label)
	assert.Equal(t, []float64{75, 70, 72, 85, 76}, chart.Datasets[0].Data)
	assert.Len(t, chart.Datasets[0].BackgroundColor, 5)
}

func TestComputeFinalMissingStagesDefaultToZero(t *testing.T) {
	db := setupTestDB(t)
	testResultRepo := repositories.NewTestResultRepository(db)
	finalResultRepo := repositories.NewFinalResultRepository(db)
	aggregator := NewAggregatorService(testResultRepo, finalResultRepo)

	userID := uuid.New()
	require.NoError(t, testResultRepo.Create(&models.TestResult{
		UserID:    userID,
		TestType:  models.StageResume,
		Score:     80,
		CreatedAt: time.Now(),
	}))

	response, err := aggregator.ComputeFinal(userID)
	require.NoError(t, err)

	assert.Equal(t, models.StageScores{Resume: 80}, response.Scores)
	assert.InDelta(t, 16.0, response.OverallScore, 1e-9)
	assert.Equal(t, models.StatusFail, response.Status)
}

func TestComputeFinalUsesLatestScorePerStage(t *testing.T) {
	db := setupTestDB(t)
	testResultRepo := repositories.NewTestResultRepository(db)
	aggregator := NewAggregatorService(testResultRepo, repositories.NewFinalResultRepository(db))

	userID := uuid.New()
	base := time.Now()
	require.NoError(t, testResultRepo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageText, Score: 40, CreatedAt: base,
	}))
	require.NoError(t, testResultRepo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageText, Score: 90, CreatedAt: base.Add(time.Second),
	}))

	response, err := aggregator.ComputeFinal(userID)
	require.NoError(t, err)

	assert.Equal(t, 90.0, response.Scores.Text)
}

func TestComputeFinalAppendsHistory(t *testing.T) {
	db := setupTestDB(t)
	testResultRepo := repositories.NewTestResultRepository(db)
	aggregator := NewAggregatorService(testResultRepo, repositories.NewFinalResultRepository(db))

	userID := uuid.New()
	require.NoError(t, testResultRepo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageVideo, Score: 85, CreatedAt: time.Now(),
	}))

	_, err := aggregator.ComputeFinal(userID)
	require.NoError(t, err)
	_, err = aggregator.ComputeFinal(userID)
	require.NoError(t, err)

	history, err := aggregator.History(userID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	for _, result := range history {
		assert.Equal(t, userID, result.UserID)
		assert.Equal(t, 85.0, result.VideoScore)
		assert.InDelta(t, 25.5, result.OverallScore, 1e-9)
	}
}
