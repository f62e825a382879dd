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

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:         m.ID,
		Name:       m.Name,
		Job:        m.Job,
		Experience: m.Experience,
		Email:      util.NullStringToString(m.Email),
		Phone:      util.NullStringToString(m.Phone),
		CreatedAt:  m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:         u.ID,
		Name:       u.Name,
		Job:        u.Job,
		Experience: u.Experience,
		Email:      util.StringToNullString(u.Email),
		Phone:      util.StringToNullString(u.Phone),
		CreatedAt:  u.CreatedAt,
	}
}

// CreateUser inserts a new user. The caller-provided struct gets its ID and
// CreatedAt filled in.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	user.CreatedAt = time.Now()

	record := fromDomainUser(user)
	query := `INSERT INTO users (id, name, job, experience, email, phone, created_at)
	          VALUES (:id, :name, :job, :experience, :email, :phone, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID. Returns nil, nil when the user
// does not exist; services decide whether that is an error.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var record models.User
	query := `SELECT id, name, job, experience, email, phone, created_at FROM users WHERE id = ?`

	err := r.db.GetContext(ctx, &record, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomainUser(&record), nil
}

// GetAllUsers retrieves every user ordered by creation.
func (r *sqlxUserRepository) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	var records []models.User
	query := `SELECT id, name, job, experience, email, phone, created_at FROM users ORDER BY id`

	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(records))
	for i := range records {
		users = append(users, toDomainUser(&records[i]))
	}
	return users, nil
}
