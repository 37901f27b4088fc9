package services

import (
	"math/rand"
	"strings"

	"interview-coach/internal/models"
)

// Fixed sub-score weights for combining a video session's ratings.
const (
	videoEyeContactWeight = 0.4
	videoPostureWeight    = 0.3
	videoGestureWeight    = 0.2
	videoExpressionWeight = 0.1
)

// VideoAnalyzer rates a recorded video session on the four body-language
// sub-scores. The combination policy below applies regardless of where
// the sub-scores come from.
type VideoAnalyzer interface {
	AnalyzeSession(duration int) models.VideoSubScores
}

// simulatedVideoAnalyzer draws sub-scores from an injected random
// source, so tests can seed it deterministically.
type simulatedVideoAnalyzer struct {
	rng *rand.Rand
}

func NewSimulatedVideoAnalyzer(rng *rand.Rand) VideoAnalyzer {
	return &simulatedVideoAnalyzer{rng: rng}
}

// AnalyzeSession implements VideoAnalyzer.
func (a *simulatedVideoAnalyzer) AnalyzeSession(duration int) models.VideoSubScores {
	return models.VideoSubScores{
		EyeContactScore: float64(70 + a.rng.Intn(26)),
		PostureScore:    float64(65 + a.rng.Intn(26)),
		GestureScore:    float64(60 + a.rng.Intn(29)),
		ExpressionScore: float64(68 + a.rng.Intn(25)),
	}
}

// CombineVideoScores applies the fixed sub-score weights.
func CombineVideoScores(scores models.VideoSubScores) float64 {
	return scores.EyeContactScore*videoEyeContactWeight +
		scores.PostureScore*videoPostureWeight +
		scores.GestureScore*videoGestureWeight +
		scores.ExpressionScore*videoExpressionWeight
}

// GenerateVideoFeedback builds one sentence per sub-score from its
// threshold ladder. These 85/70 tiers are intentionally distinct from
// the 80/60 tiers used in the final narrative feedback.
func GenerateVideoFeedback(scores models.VideoSubScores) string {
	var feedback []string

	if scores.EyeContactScore >= 85 {
		feedback = append(feedback, "Excellent eye contact maintained throughout.")
	} else if scores.EyeContactScore >= 70 {
		feedback = append(feedback, "Good eye contact, could be more consistent.")
	} else {
		feedback = append(feedback, "Work on maintaining better eye contact.")
	}

	if scores.PostureScore >= 85 {
		feedback = append(feedback, "Confident and professional posture.")
	} else if scores.PostureScore >= 70 {
		feedback = append(feedback, "Generally good posture.")
	} else {
		feedback = append(feedback, "Improve posture for better presence.")
	}

	if scores.GestureScore >= 85 {
		feedback = append(feedback, "Effective use of hand gestures.")
	} else if scores.GestureScore >= 70 {
		feedback = append(feedback, "Appropriate gestures used.")
	} else {
		feedback = append(feedback, "Consider using more natural gestures.")
	}

	if scores.ExpressionScore >= 85 {
		feedback = append(feedback, "Positive and engaging facial expressions.")
	} else if scores.ExpressionScore >= 70 {
		feedback = append(feedback, "Good facial expressions.")
	} else {
		feedback = append(feedback, "Work on more expressive facial responses.")
	}

	return strings.Join(feedback, " ")
}
