package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-coach/internal/config"
	"interview-coach/internal/models"
)

func TestQuestionBankSeededOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	questions, err := repo.FindActive()
	require.NoError(t, err)
	assert.Len(t, questions, len(models.DefaultQuestions))

	// Re-running migrations must not duplicate the seed.
	require.NoError(t, config.Migrate(db))

	questions, err = repo.FindActive()
	require.NoError(t, err)
	assert.Len(t, questions, len(models.DefaultQuestions))
}

func TestQuestionFindByID(t *testing.T) {
	repo := NewQuestionRepository(setupTestDB(t))

	question, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultQuestions[0].Question, question.Question)

	_, err = repo.FindByID(999)
	assert.Error(t, err)
}
