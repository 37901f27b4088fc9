package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"interview-coach/internal/config"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
	"interview-coach/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleRegister(t *testing.T) {
	db := setupTestDB(t)
	handler := NewAuthHandler(repositories.NewUserRepository(db))

	app := fiber.New()
	app.Post("/auth/register", handler.HandleRegister)

	t.Run("creates user", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/register", models.RegisterRequest{
			Username: "jordan",
			Email:    "jordan@example.com",
			Password: "secret123",
			FullName: "Jordan Example",
		})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.Equal(t, true, payload["success"])

		user := payload["user"].(map[string]interface{})
		assert.Equal(t, "jordan", user["username"])
		assert.NotContains(t, user, "password")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/register", models.RegisterRequest{
			Username: "jordan2",
			Email:    "jordan@example.com",
			Password: "secret123",
		})

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/register", models.RegisterRequest{Username: "nobody"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleGetProgress(t *testing.T) {
	db := setupTestDB(t)
	handler := NewProgressHandler(services.NewProgressService(repositories.NewProgressRepository(db)))

	app := fiber.New()
	app.Get("/progress/:user_id", handler.HandleGetProgress)

	t.Run("creates progress on first request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/progress/"+uuid.NewString(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		payload := decodeBody(t, resp)
		progress := payload["progress"].(map[string]interface{})
		assert.Equal(t, "resume", progress["current_test_type"])
		assert.Equal(t, false, progress["has_uploaded_resume"])
	})

	t.Run("rejects malformed user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/progress/not-a-uuid", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

type stubVideoAnalyzer struct {
	scores models.VideoSubScores
}

func (s *stubVideoAnalyzer) AnalyzeSession(duration int) models.VideoSubScores {
	return s.scores
}

func newVideoTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db := setupTestDB(t)
	assessmentService := services.NewAssessmentService(
		repositories.NewTestResultRepository(db),
		repositories.NewResumeRepository(db),
		repositories.NewQuestionRepository(db),
		services.NewProgressService(repositories.NewProgressRepository(db)),
		services.NewDocumentParserService(),
		nil,
		nil,
		nil,
		&stubVideoAnalyzer{scores: models.VideoSubScores{
			EyeContactScore: 90,
			PostureScore:    85,
			GestureScore:    80,
			ExpressionScore: 75,
		}},
	)

	app := fiber.New()
	app.Post("/tests/video", NewVideoTestHandler(assessmentService).HandleSubmitVideo)
	return app
}

func TestHandleSubmitVideo(t *testing.T) {
	app := newVideoTestApp(t)

	t.Run("submits session", func(t *testing.T) {
		resp := postJSON(t, app, "/tests/video", models.VideoTestRequest{
			UserID:   uuid.NewString(),
			Duration: 120,
		})

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		payload := decodeBody(t, resp)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, 85.0, payload["score"])

		progress := payload["progress"].(map[string]interface{})
		assert.Equal(t, true, progress["has_completed_video_test"])
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		resp := postJSON(t, app, "/tests/video", models.VideoTestRequest{
			UserID:   uuid.NewString(),
			Duration: -5,
		})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects missing user id", func(t *testing.T) {
		resp := postJSON(t, app, "/tests/video", models.VideoTestRequest{Duration: 60})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
