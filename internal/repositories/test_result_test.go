package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"interview-coach/internal/config"
	"interview-coach/internal/models"
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

func TestFindLatestByUserAndType(t *testing.T) {
	repo := NewTestResultRepository(setupTestDB(t))
	userID := uuid.New()
	base := time.Now().Truncate(time.Second)

	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageText, Score: 40, CreatedAt: base,
	}))
	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageText, Score: 90, CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageVoice, Score: 55, CreatedAt: base.Add(2 * time.Minute),
	}))

	latest, err := repo.FindLatestByUserAndType(userID, models.StageText)
	require.NoError(t, err)
	assert.Equal(t, 90.0, latest.Score)

	latest, err = repo.FindLatestByUserAndType(userID, models.StageVoice)
	require.NoError(t, err)
	assert.Equal(t, 55.0, latest.Score)
}

func TestFindLatestBreaksTimestampTiesByID(t *testing.T) {
	repo := NewTestResultRepository(setupTestDB(t))
	userID := uuid.New()
	at := time.Now().Truncate(time.Second)

	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageVideo, Score: 60, CreatedAt: at,
	}))
	second := &models.TestResult{
		UserID: userID, TestType: models.StageVideo, Score: 82, CreatedAt: at,
	}
	require.NoError(t, repo.Create(second))

	latest, err := repo.FindLatestByUserAndType(userID, models.StageVideo)
	require.NoError(t, err)

	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 82.0, latest.Score)
}

func TestFindLatestNotFound(t *testing.T) {
	repo := NewTestResultRepository(setupTestDB(t))

	_, err := repo.FindLatestByUserAndType(uuid.New(), models.StageResume)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByUserScopedToUser(t *testing.T) {
	repo := NewTestResultRepository(setupTestDB(t))
	userID := uuid.New()
	otherID := uuid.New()
	base := time.Now().Truncate(time.Second)

	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageResume, Score: 70, CreatedAt: base,
	}))
	require.NoError(t, repo.Create(&models.TestResult{
		UserID: userID, TestType: models.StageText, Score: 75, CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(&models.TestResult{
		UserID: otherID, TestType: models.StageResume, Score: 30, CreatedAt: base,
	}))

	results, err := repo.FindByUser(userID)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, models.StageText, results[0].TestType)
	assert.Equal(t, models.StageResume, results[1].TestType)
}
