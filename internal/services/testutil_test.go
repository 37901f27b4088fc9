package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"interview-coach/internal/config"
	"interview-coach/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled connection would get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

type fakeResumeAnalyzer struct {
	analysis *ResumeAnalysis
	err      error
}

func (f *fakeResumeAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

// fakeTextAnalyzer scores answers from a fixed map and records the
// question each answer was scored against.
type fakeTextAnalyzer struct {
	scores        map[string]float64
	err           error
	seenQuestions []string
}

func (f *fakeTextAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer string) (*AnswerAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.seenQuestions = append(f.seenQuestions, question)

	score, ok := f.scores[answer]
	if !ok {
		return nil, fmt.Errorf("no fixture score for answer %q", answer)
	}

	return &AnswerAnalysis{
		Success:  true,
		Score:    score,
		Feedback: fmt.Sprintf("feedback for %s", answer),
	}, nil
}

type fakeVoiceAnalyzer struct {
	analysis     *AnswerAnalysis
	err          error
	seenQuestion string
}

func (f *fakeVoiceAnalyzer) AnalyzeRecording(ctx context.Context, audioPath, question string) (*AnswerAnalysis, error) {
	f.seenQuestion = question
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

// fixedVideoAnalyzer returns the same sub-scores for every session.
type fixedVideoAnalyzer struct {
	scores models.VideoSubScores
}

func (f *fixedVideoAnalyzer) AnalyzeSession(duration int) models.VideoSubScores {
	return f.scores
}
