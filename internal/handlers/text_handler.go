package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type TextTestHandler struct {
	assessmentService services.AssessmentService
}

func NewTextTestHandler(assessmentService services.AssessmentService) *TextTestHandler {
	return &TextTestHandler{
		assessmentService: assessmentService,
	}
}

// HandleSubmitText handles POST /tests/text
func (h *TextTestHandler) HandleSubmitText(c *fiber.Ctx) error {
	var req models.TextTestRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or missing user_id",
		})
	}

	if len(req.Answers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "answers are required",
		})
	}

	submission, err := h.assessmentService.SubmitText(c.Context(), userID, req.Answers)
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
		"success":  true,
		"message":  "Text test analyzed successfully",
		"score":    round2(submission.Score),
		"feedback": submission.Feedback,
		"progress": submission.Progress,
	})
}
