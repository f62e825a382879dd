package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bezbot/internal/domain"
	"bezbot/internal/repository/models"
	"bezbot/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptRepository covers test and scenario attempt rows.
type AttemptRepository interface {
	CreateTestAttempt(ctx context.Context, attempt *domain.TestAttempt) error
	GetTestAttemptByID(ctx context.Context, id string) (*domain.TestAttempt, error)
	GetAllTestAttempts(ctx context.Context) ([]*domain.TestAttempt, error)

	CreateScenarioAttempt(ctx context.Context, attempt *domain.ScenarioAttempt) error
	GetScenarioAttemptByID(ctx context.Context, id string) (*domain.ScenarioAttempt, error)
	GetAllScenarioAttempts(ctx context.Context) ([]*domain.ScenarioAttempt, error)
}

type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainTestAttempt(m *models.Test) *domain.TestAttempt {
	if m == nil {
		return nil
	}
	return &domain.TestAttempt{
		ID:        m.ID,
		UserID:    m.UserID,
		Module:    m.Module,
		Corrects:  m.Corrects,
		CreatedAt: m.CreatedAt,
	}
}

func toDomainScenarioAttempt(m *models.Scenario) *domain.ScenarioAttempt {
	if m == nil {
		return nil
	}
	return &domain.ScenarioAttempt{
		ID:        m.ID,
		UserID:    m.UserID,
		IsCorrect: m.IsCorrect,
		CreatedAt: m.CreatedAt,
	}
}

// CreateTestAttempt inserts a completed module quiz for a user.
func (r *sqlxAttemptRepository) CreateTestAttempt(ctx context.Context, attempt *domain.TestAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	attempt.CreatedAt = time.Now()

	record := models.Test{
		ID:        attempt.ID,
		UserID:    attempt.UserID,
		Module:    attempt.Module,
		Corrects:  attempt.Corrects,
		CreatedAt: attempt.CreatedAt,
	}
	query := `INSERT INTO tests (id, user_id, module, corrects, created_at)
	          VALUES (:id, :user_id, :module, :corrects, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, &record); err != nil {
		return fmt.Errorf("failed to create test attempt: %w", err)
	}
	return nil
}

// GetTestAttemptByID returns nil, nil when no row matches.
func (r *sqlxAttemptRepository) GetTestAttemptByID(ctx context.Context, id string) (*domain.TestAttempt, error) {
	var record models.Test
	query := `SELECT id, user_id, module, corrects, created_at FROM tests WHERE id = ?`

	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get test attempt by id: %w", err)
	}
	return toDomainTestAttempt(&record), nil
}

// GetAllTestAttempts retrieves every test attempt ordered by creation.
func (r *sqlxAttemptRepository) GetAllTestAttempts(ctx context.Context) ([]*domain.TestAttempt, error) {
	var records []models.Test
	query := `SELECT id, user_id, module, corrects, created_at FROM tests ORDER BY id`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list test attempts: %w", err)
	}

	attempts := make([]*domain.TestAttempt, 0, len(records))
	for i := range records {
		attempts = append(attempts, toDomainTestAttempt(&records[i]))
	}
	return attempts, nil
}

// CreateScenarioAttempt inserts an answered scenario for a user.
func (r *sqlxAttemptRepository) CreateScenarioAttempt(ctx context.Context, attempt *domain.ScenarioAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	attempt.CreatedAt = time.Now()

	record := models.Scenario{
		ID:        attempt.ID,
		UserID:    attempt.UserID,
		IsCorrect: attempt.IsCorrect,
		CreatedAt: attempt.CreatedAt,
	}
	query := `INSERT INTO scenarios (id, user_id, is_correct, created_at)
	          VALUES (:id, :user_id, :is_correct, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, &record); err != nil {
		return fmt.Errorf("failed to create scenario attempt: %w", err)
	}
	return nil
}

// GetScenarioAttemptByID returns nil, nil when no row matches.
func (r *sqlxAttemptRepository) GetScenarioAttemptByID(ctx context.Context, id string) (*domain.ScenarioAttempt, error) {
	var record models.Scenario
	query := `SELECT id, user_id, is_correct, created_at FROM scenarios WHERE id = ?`

	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scenario attempt by id: %w", err)
	}
	return toDomainScenarioAttempt(&record), nil
}

// GetAllScenarioAttempts retrieves every scenario attempt ordered by creation.
func (r *sqlxAttemptRepository) GetAllScenarioAttempts(ctx context.Context) ([]*domain.ScenarioAttempt, error) {
	var records []models.Scenario
	query := `SELECT id, user_id, is_correct, created_at FROM scenarios ORDER BY id`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list scenario attempts: %w", err)
	}

	attempts := make([]*domain.ScenarioAttempt, 0, len(records))
	for i := range records {
		attempts = append(attempts, toDomainScenarioAttempt(&records[i]))
	}
	return attempts, nil
}
