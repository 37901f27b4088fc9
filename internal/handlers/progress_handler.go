package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// HandleGetProgress handles GET /progress/:user_id. A first request
// creates the record with the pipeline at its start.
func (h *ProgressHandler) HandleGetProgress(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID format",
		})
	}

	progress, err := h.progressService.GetOrCreate(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get progress",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"progress": progress,
	})
}
