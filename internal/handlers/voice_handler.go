package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/services"
)

type VoiceTestHandler struct {
	assessmentService services.AssessmentService
	storageService    services.StorageService
	maxFileSize       int64
}

func NewVoiceTestHandler(
	assessmentService services.AssessmentService,
	storageService services.StorageService,
	maxFileSize int64,
) *VoiceTestHandler {
	return &VoiceTestHandler{
		assessmentService: assessmentService,
		storageService:    storageService,
		maxFileSize:       maxFileSize,
	}
}

// HandleSubmitVoice handles POST /tests/voice
func (h *VoiceTestHandler) HandleSubmitVoice(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or missing user_id",
		})
	}

	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "audio file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Audio file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	var questionID uint
	if raw := c.FormValue("question_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid question_id format",
			})
		}
		questionID = uint(parsed)
	}

	filename, filePath, err := h.storageService.SaveFile(file, services.FileKindAudio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("failed to save audio file: %v", err),
		})
	}
	// Recordings are only needed for the duration of the analysis
	defer h.storageService.DeleteFile(services.FileKindAudio, filename)

	submission, err := h.assessmentService.SubmitVoice(c.Context(), userID, filePath, questionID)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": "AI analysis failed",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save results",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Voice test analyzed successfully",
		"data": fiber.Map{
			"score":         round2(submission.Score),
			"feedback":      submission.Feedback,
			"transcription": submission.Transcription,
		},
		"progress": submission.Progress,
	})
}
