package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type VideoTestHandler struct {
	assessmentService services.AssessmentService
}

func NewVideoTestHandler(assessmentService services.AssessmentService) *VideoTestHandler {
	return &VideoTestHandler{
		assessmentService: assessmentService,
	}
}

// HandleSubmitVideo handles POST /tests/video
func (h *VideoTestHandler) HandleSubmitVideo(c *fiber.Ctx) error {
	var req models.VideoTestRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request data",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or missing user_id",
		})
	}

	if req.Duration < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "duration must not be negative",
		})
	}

	submission, err := h.assessmentService.SubmitVideo(userID, req.Duration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Video test failed",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "Video test submitted successfully",
		"score":         round2(submission.Score),
		"overall_score": round2(submission.Score),
		"analysis":      submission.SubScores,
		"feedback":      submission.Feedback,
		"test_id":       submission.TestID,
		"progress":      submission.Progress,
	})
}
