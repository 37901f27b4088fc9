package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-coach/internal/services"
)

type ResumeHandler struct {
	assessmentService services.AssessmentService
	storageService    services.StorageService
	maxFileSize       int64
}

func NewResumeHandler(
	assessmentService services.AssessmentService,
	storageService services.StorageService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		assessmentService: assessmentService,
		storageService:    storageService,
		maxFileSize:       maxFileSize,
	}
}

// HandleUploadResume handles POST /resume
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or missing user_id",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, services.FileKindResume)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	submission, err := h.assessmentService.SubmitResume(c.Context(), userID, services.ResumeUpload{
		Filename:         filename,
		OriginalFilename: file.Filename,
		FilePath:         filePath,
		FileSize:         file.Size,
		FileType:         file.Header.Get("Content-Type"),
	})
	if err != nil {
		// Discard the stored file; a failed submission leaves no trace
		h.storageService.DeleteFile(services.FileKindResume, filename)

		if errors.Is(err, services.ErrAnalysisFailed) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": "AI analysis failed",
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to process resume",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Resume uploaded and analyzed successfully",
		"resume_id": submission.Resume.ID.String(),
		"data": fiber.Map{
			"score":                 submission.Analysis.Score,
			"feedback":              submission.Analysis.Feedback,
			"skills":                submission.Analysis.Skills,
			"programming_languages": submission.Analysis.ProgrammingLanguages,
			"job_categories":        submission.Analysis.JobCategories,
			"experience_years":      submission.Analysis.ExperienceYears,
			"education":             submission.Analysis.Education,
			"certifications":        submission.Analysis.Certifications,
			"analysis":              submission.Analysis.Analysis,
		},
		"progress": submission.Progress,
	})
}
