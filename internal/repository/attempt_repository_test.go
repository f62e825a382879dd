package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bezbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(`INSERT INTO tests`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	attempt := &domain.TestAttempt{UserID: "user1", Module: "3", Corrects: 4}
	err := repo.CreateTestAttempt(context.Background(), attempt)

	require.NoError(t, err)
	assert.Len(t, attempt.ID, 26)
	assert.False(t, attempt.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTestAttemptByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "module", "corrects", "created_at"}).
		AddRow("att1", "user1", "3", 4, time.Now())
	mock.ExpectQuery(`SELECT id, user_id, module, corrects, created_at FROM tests WHERE id = \?`).
		WithArgs("att1").
		WillReturnRows(rows)

	attempt, err := repo.GetTestAttemptByID(context.Background(), "att1")

	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, "3", attempt.Module)
	assert.Equal(t, 4, attempt.Corrects)
}

func TestGetTestAttemptByIDNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectQuery(`SELECT id, user_id, module, corrects, created_at FROM tests WHERE id = \?`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	attempt, err := repo.GetTestAttemptByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestCreateScenarioAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(`INSERT INTO scenarios`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	attempt := &domain.ScenarioAttempt{UserID: "user1", IsCorrect: true}
	err := repo.CreateScenarioAttempt(context.Background(), attempt)

	require.NoError(t, err)
	assert.Len(t, attempt.ID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScenarioAttemptByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "is_correct", "created_at"}).
		AddRow("att1", "user1", true, time.Now())
	mock.ExpectQuery(`SELECT id, user_id, is_correct, created_at FROM scenarios WHERE id = \?`).
		WithArgs("att1").
		WillReturnRows(rows)

	attempt, err := repo.GetScenarioAttemptByID(context.Background(), "att1")

	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.True(t, attempt.IsCorrect)
}

func TestGetAllScenarioAttempts(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAttemptRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "is_correct", "created_at"}).
		AddRow("att1", "user1", true, time.Now()).
		AddRow("att2", "user2", false, time.Now())
	mock.ExpectQuery(`SELECT id, user_id, is_correct, created_at FROM scenarios ORDER BY id`).
		WillReturnRows(rows)

	attempts, err := repo.GetAllScenarioAttempts(context.Background())

	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.False(t, attempts[1].IsCorrect)
}
