package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserModuleStats(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"module", "test_count", "total_corrects", "avg_corrects"}).
		AddRow("1", 2, 7, 3.5).
		AddRow("2", 1, 5, 5.0)
	mock.ExpectQuery(`SELECT(.|\n)*FROM tests(.|\n)*WHERE user_id = \?(.|\n)*GROUP BY module`).
		WithArgs("user1").
		WillReturnRows(rows)

	stats, err := repo.GetUserModuleStats(context.Background(), "user1")

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "1", stats[0].Module)
	assert.Equal(t, 3.5, stats[0].AvgCorrects)
}

func TestGetUserScenarioOutcome(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"total", "correct"}).AddRow(4, 3)
	mock.ExpectQuery(`SELECT(.|\n)*FROM scenarios(.|\n)*WHERE user_id = \?`).
		WithArgs("user1").
		WillReturnRows(rows)

	total, correct, err := repo.GetUserScenarioOutcome(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 3, correct)
}

func TestGetTotals(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"users_total", "tests_total", "scenarios_total"}).
		AddRow(10, 25, 8)
	mock.ExpectQuery(`SELECT(.|\n)*users_total(.|\n)*tests_total(.|\n)*scenarios_total`).
		WillReturnRows(rows)

	users, tests, scenarios, err := repo.GetTotals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, users)
	assert.Equal(t, 25, tests)
	assert.Equal(t, 8, scenarios)
}

func TestGetModuleStatsHardestFirst(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"module", "test_count", "total_corrects", "avg_corrects"}).
		AddRow("4", 3, 3, 1.0).
		AddRow("1", 2, 4, 2.0)
	mock.ExpectQuery(`SELECT(.|\n)*FROM tests(.|\n)*GROUP BY module(.|\n)*ORDER BY avg_corrects ASC`).
		WillReturnRows(rows)

	stats, err := repo.GetModuleStats(context.Background())

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "4", stats[0].Module)
}

func TestGetScenarioOutcome(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"total", "correct"}).AddRow(8, 6)
	mock.ExpectQuery(`SELECT(.|\n)*FROM scenarios`).
		WillReturnRows(rows)

	total, correct, err := repo.GetScenarioOutcome(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 8, total)
	assert.Equal(t, 6, correct)
}

func TestGetUsersPerformance(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"user_id", "name", "job", "scenarios_total", "scenarios_correct", "success_rate"}).
		AddRow("user1", "Ivan", "Welder", 3, 3, 100.0).
		AddRow("user2", "Olga", "Crane operator", 5, 3, 60.0)
	mock.ExpectQuery(`SELECT(.|\n)*FROM users u(.|\n)*JOIN scenarios s(.|\n)*ORDER BY success_rate DESC`).
		WillReturnRows(rows)

	performance, err := repo.GetUsersPerformance(context.Background())

	require.NoError(t, err)
	require.Len(t, performance, 2)
	assert.Equal(t, "user1", performance[0].UserID)
	assert.Equal(t, 100.0, performance[0].SuccessRatePercent)
	assert.Equal(t, 60.0, performance[1].SuccessRatePercent)
}

func TestGetModuleStatsQueryFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT(.|\n)*FROM tests`).
		WillReturnError(errors.New("db down"))

	_, err := repo.GetModuleStats(context.Background())
	assert.Error(t, err)
}
