package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the prompt for resume analysis.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, rubricContext string) string {
	return fmt.Sprintf(`You are an expert career coach analyzing a candidate's resume for interview preparation.

SCORING GUIDELINES:
%s

CANDIDATE RESUME:
%s

Analyze the resume thoroughly: extract skills, programming languages, education, certifications, and years of experience, and rank the job categories the candidate best fits.

Return your response in the following JSON format:
{
  "success": true,
  "score": <0-100 overall resume quality score>,
  "feedback": "<3-5 sentences on strengths and weaknesses>",
  "skills": ["<skill>", ...],
  "programming_languages": ["<language>", ...],
  "job_categories": [{"category": "<name>", "match_score": <0-100>}, ...],
  "experience_years": <number>,
  "education": ["<degree or institution>", ...],
  "certifications": ["<certification>", ...],
  "analysis": "<detailed free-text analysis>"
}

Order job_categories from best to worst match. Be objective and specific.`,
		rubricContext, resumeText)
}

// BuildTextAnalysisPrompt creates the prompt for scoring one written answer.
func (pb *PromptBuilder) BuildTextAnalysisPrompt(question, answer, rubricContext string) string {
	return fmt.Sprintf(`You are an expert interview coach scoring a candidate's written answer.

SCORING GUIDELINES:
%s

QUESTION:
%s

CANDIDATE ANSWER:
%s

Score the answer on grammar, vocabulary, clarity, and relevance to the question.

Return your response in the following JSON format:
{
  "success": true,
  "score": <0-100 overall score>,
  "feedback": "<2-4 sentences of actionable feedback>"
}

Be objective. An empty or off-topic answer scores low.`,
		rubricContext, question, answer)
}

// BuildVoiceAnalysisPrompt creates the prompt sent alongside the audio
// recording of a spoken answer.
func (pb *PromptBuilder) BuildVoiceAnalysisPrompt(question, rubricContext string) string {
	return fmt.Sprintf(`You are an expert interview coach scoring a candidate's spoken answer from the attached audio recording.

SCORING GUIDELINES:
%s

QUESTION ASKED:
%s

Transcribe the recording, then score the answer on clarity, fluency, confidence, and pace.

Return your response in the following JSON format:
{
  "success": true,
  "score": <0-100 overall score>,
  "feedback": "<2-4 sentences of actionable feedback>",
  "transcription": "<what the candidate said>"
}

If the recording is silent or unintelligible, return success false with an explanation in feedback.`,
		rubricContext, question)
}

// BuildRetrievalQuery creates the query text used for rubric retrieval.
func (pb *PromptBuilder) BuildRetrievalQuery(rubricType string) string {
	switch rubricType {
	case "resume_rubric":
		return "Resume quality evaluation criteria and scoring guidelines"
	case "text_rubric":
		return "Written interview answer evaluation criteria and scoring guidelines"
	case "voice_rubric":
		return "Spoken interview answer evaluation criteria and scoring guidelines"
	default:
		return rubricType
	}
}

// FormatRubricContext flattens retrieval results into prompt context.
func FormatRubricContext(results []SearchResult) string {
	if len(results) == 0 {
		return "No specific guidelines available. Use standard interview assessment criteria."
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guideline %d ---\n%s",
			i+1, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
