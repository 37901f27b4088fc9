package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/repositories"
)

type QuestionHandler struct {
	questionRepo repositories.QuestionRepository
}

func NewQuestionHandler(questionRepo repositories.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
	}
}

// HandleListQuestions handles GET /questions
func (h *QuestionHandler) HandleListQuestions(c *fiber.Ctx) error {
	questions, err := h.questionRepo.FindActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load questions",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"questions": questions,
	})
}
