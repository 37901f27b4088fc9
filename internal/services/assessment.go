package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// ErrAnalysisFailed marks external analyzer failures. Nothing is
// persisted and progress is untouched, so the submission can be
// retried safely.
var ErrAnalysisFailed = errors.New("analysis failed")

const defaultVoiceQuestion = "Tell me about yourself"

// AssessmentService owns the four stage submissions: analyze, persist
// the stage result, advance progress. A failed analysis leaves no
// trace.
type AssessmentService interface {
	SubmitResume(ctx context.Context, userID uuid.UUID, upload ResumeUpload) (*ResumeSubmission, error)
	SubmitText(ctx context.Context, userID uuid.UUID, answers map[uint]string) (*TextSubmission, error)
	SubmitVoice(ctx context.Context, userID uuid.UUID, audioPath string, questionID uint) (*VoiceSubmission, error)
	SubmitVideo(userID uuid.UUID, duration int) (*VideoSubmission, error)
}

// ResumeUpload carries the stored file's metadata into analysis.
type ResumeUpload struct {
	Filename         string
	OriginalFilename string
	FilePath         string
	FileSize         int64
	FileType         string
}

type ResumeSubmission struct {
	Resume   *models.Resume
	Analysis *ResumeAnalysis
	Progress *models.UserProgress
}

type TextSubmission struct {
	Score    float64
	Feedback string
	Progress *models.UserProgress
}

type VoiceSubmission struct {
	Score         float64
	Feedback      string
	Transcription string
	Progress      *models.UserProgress
}

type VideoSubmission struct {
	TestID    uint
	Score     float64
	SubScores models.VideoSubScores
	Feedback  string
	Progress  *models.UserProgress
}

type assessmentService struct {
	testResultRepo  repositories.TestResultRepository
	resumeRepo      repositories.ResumeRepository
	questionRepo    repositories.QuestionRepository
	progressService ProgressService
	documentParser  DocumentParserService
	resumeAnalyzer  ResumeAnalyzer
	textAnalyzer    TextAnalyzer
	voiceAnalyzer   VoiceAnalyzer
	videoAnalyzer   VideoAnalyzer
}

func NewAssessmentService(
	testResultRepo repositories.TestResultRepository,
	resumeRepo repositories.ResumeRepository,
	questionRepo repositories.QuestionRepository,
	progressService ProgressService,
	documentParser DocumentParserService,
	resumeAnalyzer ResumeAnalyzer,
	textAnalyzer TextAnalyzer,
	voiceAnalyzer VoiceAnalyzer,
	videoAnalyzer VideoAnalyzer,
) AssessmentService {
	return &assessmentService{
		testResultRepo:  testResultRepo,
		resumeRepo:      resumeRepo,
		questionRepo:    questionRepo,
		progressService: progressService,
		documentParser:  documentParser,
		resumeAnalyzer:  resumeAnalyzer,
		textAnalyzer:    textAnalyzer,
		voiceAnalyzer:   voiceAnalyzer,
		videoAnalyzer:   videoAnalyzer,
	}
}

// SubmitResume implements AssessmentService. The analyzer's output is
// persisted as-is; the top-ranked job category becomes the resume's
// primary category.
func (s *assessmentService) SubmitResume(ctx context.Context, userID uuid.UUID, upload ResumeUpload) (*ResumeSubmission, error) {
	resumeText, err := s.documentParser.ExtractText(upload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	analysis, err := s.resumeAnalyzer.AnalyzeResume(ctx, CleanText(resumeText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if !analysis.Success {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisFailed, analysis.Feedback)
	}

	jobCategory := "General"
	if len(analysis.JobCategories) > 0 {
		jobCategory = analysis.JobCategories[0].Category
	}

	resume := &models.Resume{
		ID:                   uuid.New(),
		UserID:               userID,
		Filename:             upload.Filename,
		OriginalFilename:     upload.OriginalFilename,
		FilePath:             upload.FilePath,
		FileSize:             upload.FileSize,
		FileType:             upload.FileType,
		Skills:               marshalList(analysis.Skills),
		ProgrammingLanguages: marshalList(analysis.ProgrammingLanguages),
		EducationLevel:       marshalList(analysis.Education),
		ExperienceYears:      analysis.ExperienceYears,
		Certifications:       marshalList(analysis.Certifications),
		JobCategory:          jobCategory,
		Score:                analysis.Score,
		AnalysisResult:       analysis.Analysis,
		CreatedAt:            time.Now(),
	}

	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, err
	}

	if err := s.recordResult(userID, models.StageResume, analysis.Score, analysis.Feedback, 0); err != nil {
		return nil, err
	}

	progress, err := s.progressService.Advance(userID, models.StageResume)
	if err != nil {
		return nil, err
	}

	return &ResumeSubmission{Resume: resume, Analysis: analysis, Progress: progress}, nil
}

// SubmitText implements AssessmentService. Each answer is scored
// independently; the stage score is the mean over the answered
// questions only. A single failed analysis fails the whole stage with
// nothing persisted.
func (s *assessmentService) SubmitText(ctx context.Context, userID uuid.UUID, answers map[uint]string) (*TextSubmission, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers submitted")
	}

	questionIDs := make([]uint, 0, len(answers))
	for id := range answers {
		questionIDs = append(questionIDs, id)
	}
	sort.Slice(questionIDs, func(i, j int) bool { return questionIDs[i] < questionIDs[j] })

	var totalScore float64
	var allFeedback []string

	for _, questionID := range questionIDs {
		questionText := "General question"
		if question, err := s.questionRepo.FindByID(questionID); err == nil {
			questionText = question.Question
		}

		analysis, err := s.textAnalyzer.AnalyzeAnswer(ctx, questionText, answers[questionID])
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrAnalysisFailed, questionID, err)
		}
		if !analysis.Success {
			return nil, fmt.Errorf("%w: question %d: %s", ErrAnalysisFailed, questionID, analysis.Feedback)
		}

		totalScore += analysis.Score
		allFeedback = append(allFeedback, fmt.Sprintf("Q%d: %s", questionID, analysis.Feedback))
	}

	// Unanswered questions are excluded, not penalized: the divisor is
	// the number of submitted answers.
	averageScore := totalScore / float64(len(answers))
	combinedFeedback := joinFeedback(allFeedback)

	if err := s.recordResult(userID, models.StageText, averageScore, combinedFeedback, 0); err != nil {
		return nil, err
	}

	progress, err := s.progressService.Advance(userID, models.StageText)
	if err != nil {
		return nil, err
	}

	return &TextSubmission{Score: averageScore, Feedback: combinedFeedback, Progress: progress}, nil
}

// SubmitVoice implements AssessmentService.
func (s *assessmentService) SubmitVoice(ctx context.Context, userID uuid.UUID, audioPath string, questionID uint) (*VoiceSubmission, error) {
	questionText := defaultVoiceQuestion
	if questionID > 0 {
		if question, err := s.questionRepo.FindByID(questionID); err == nil {
			questionText = question.Question
		}
	}

	analysis, err := s.voiceAnalyzer.AnalyzeRecording(ctx, audioPath, questionText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if !analysis.Success {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisFailed, analysis.Feedback)
	}

	if err := s.recordResult(userID, models.StageVoice, analysis.Score, analysis.Feedback, 0); err != nil {
		return nil, err
	}

	progress, err := s.progressService.Advance(userID, models.StageVoice)
	if err != nil {
		return nil, err
	}

	return &VoiceSubmission{
		Score:         analysis.Score,
		Feedback:      analysis.Feedback,
		Transcription: analysis.Transcription,
		Progress:      progress,
	}, nil
}

// SubmitVideo implements AssessmentService.
func (s *assessmentService) SubmitVideo(userID uuid.UUID, duration int) (*VideoSubmission, error) {
	subScores := s.videoAnalyzer.AnalyzeSession(duration)
	overallScore := CombineVideoScores(subScores)
	feedback := GenerateVideoFeedback(subScores)

	result := &models.TestResult{
		UserID:    userID,
		TestType:  models.StageVideo,
		Score:     overallScore,
		Feedback:  feedback,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	if err := s.testResultRepo.Create(result); err != nil {
		return nil, err
	}

	progress, err := s.progressService.Advance(userID, models.StageVideo)
	if err != nil {
		return nil, err
	}

	return &VideoSubmission{
		TestID:    result.ID,
		Score:     overallScore,
		SubScores: subScores,
		Feedback:  feedback,
		Progress:  progress,
	}, nil
}

func (s *assessmentService) recordResult(userID uuid.UUID, stage models.Stage, score float64, feedback string, duration int) error {
	result := &models.TestResult{
		UserID:    userID,
		TestType:  stage,
		Score:     score,
		Feedback:  feedback,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	return s.testResultRepo.Create(result)
}

func joinFeedback(feedback []string) string {
	return strings.Join(feedback, "\n\n")
}

func marshalList(items []string) string {
	if items == nil {
		items = []string{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("⚠️  Failed to marshal list: %v\n", err)
		return "[]"
	}

	return string(data)
}
