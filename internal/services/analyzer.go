package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResumeAnalysis is the external scorer result for a resume upload.
type ResumeAnalysis struct {
	Success              bool          `json:"success"`
	Score                float64       `json:"score"`
	Feedback             string        `json:"feedback"`
	Skills               []string      `json:"skills"`
	ProgrammingLanguages []string      `json:"programming_languages"`
	JobCategories        []JobCategory `json:"job_categories"`
	ExperienceYears      float64       `json:"experience_years"`
	Education            []string      `json:"education"`
	Certifications       []string      `json:"certifications"`
	Analysis             string        `json:"analysis"`
}

// JobCategory is one entry of the analyzer's ranked category list. The
// first element is the candidate's primary category.
type JobCategory struct {
	Category   string  `json:"category"`
	MatchScore float64 `json:"match_score"`
}

// AnswerAnalysis is the external scorer result for a single written or
// spoken answer.
type AnswerAnalysis struct {
	Success       bool    `json:"success"`
	Score         float64 `json:"score"`
	Feedback      string  `json:"feedback"`
	Transcription string  `json:"transcription,omitempty"`
}

type ResumeAnalyzer interface {
	AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error)
}

type TextAnalyzer interface {
	AnalyzeAnswer(ctx context.Context, question, answer string) (*AnswerAnalysis, error)
}

type VoiceAnalyzer interface {
	AnalyzeRecording(ctx context.Context, audioPath, question string) (*AnswerAnalysis, error)
}

// geminiAnalyzer backs all three analyzer contracts with Gemini,
// grounding each prompt with rubric context retrieved from Qdrant.
// Every call runs under the configured timeout.
type geminiAnalyzer struct {
	geminiService GeminiService
	qdrantService QdrantService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	maxRetries    int
}

func NewGeminiAnalyzer(
	geminiService GeminiService,
	qdrantService QdrantService,
	timeout time.Duration,
	maxRetries int,
) *geminiAnalyzer {
	return &geminiAnalyzer{
		geminiService: geminiService,
		qdrantService: qdrantService,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		maxRetries:    maxRetries,
	}
}

// AnalyzeResume implements ResumeAnalyzer.
func (a *geminiAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	rubricContext := a.retrieveRubric(ctx, "resume_rubric")
	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(resumeText, rubricContext)

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate resume analysis: %w", err)
	}

	var result ResumeAnalysis
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse resume analysis response: %w", err)
	}

	return &result, nil
}

// AnalyzeAnswer implements TextAnalyzer.
func (a *geminiAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer string) (*AnswerAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	rubricContext := a.retrieveRubric(ctx, "text_rubric")
	prompt := a.promptBuilder.BuildTextAnalysisPrompt(question, answer, rubricContext)

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, a.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer analysis: %w", err)
	}

	var result AnswerAnalysis
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse answer analysis response: %w", err)
	}

	return &result, nil
}

// AnalyzeRecording implements VoiceAnalyzer.
func (a *geminiAnalyzer) AnalyzeRecording(ctx context.Context, audioPath, question string) (*AnswerAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	audioData, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	rubricContext := a.retrieveRubric(ctx, "voice_rubric")
	prompt := a.promptBuilder.BuildVoiceAnalysisPrompt(question, rubricContext)

	response, err := a.geminiService.GenerateFromAudio(ctx, audioData, audioMimeType(audioPath), prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to generate voice analysis: %w", err)
	}

	var result AnswerAnalysis
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse voice analysis response: %w", err)
	}

	return &result, nil
}

// retrieveRubric fetches the closest rubric chunks for the given type.
// Retrieval problems degrade to an empty context, never to a failure.
func (a *geminiAnalyzer) retrieveRubric(ctx context.Context, rubricType string) string {
	query := a.promptBuilder.BuildRetrievalQuery(rubricType)

	embedding, err := a.geminiService.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("⚠️  Failed to embed rubric query: %v\n", err)
		return FormatRubricContext(nil)
	}

	results, err := a.qdrantService.SearchSimilar(ctx, embedding, rubricType, 3)
	if err != nil {
		log.Printf("⚠️  Failed to search rubric %s: %v\n", rubricType, err)
		return FormatRubricContext(nil)
	}

	return FormatRubricContext(results)
}

func audioMimeType(audioPath string) string {
	switch strings.ToLower(filepath.Ext(audioPath)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".webm":
		return "audio/webm"
	case ".ogg":
		return "audio/ogg"
	default:
		return "application/octet-stream"
	}
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w\nResponse: %s", err, response)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
