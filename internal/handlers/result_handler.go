package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/services"
)

type ResultHandler struct {
	aggregatorService services.AggregatorService
}

func NewResultHandler(aggregatorService services.AggregatorService) *ResultHandler {
	return &ResultHandler{
		aggregatorService: aggregatorService,
	}
}

// HandleGetFinalScore handles GET /results/final/:user_id. Each call
// computes a fresh aggregation and appends it to the history.
func (h *ResultHandler) HandleGetFinalScore(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID format",
		})
	}

	result, err := h.aggregatorService.ComputeFinal(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compute final score",
		})
	}

	return c.JSON(result)
}

// HandleGetHistory handles GET /results/history/:user_id
func (h *ResultHandler) HandleGetHistory(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid user ID format",
		})
	}

	history, err := h.aggregatorService.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load result history",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": history,
	})
}
