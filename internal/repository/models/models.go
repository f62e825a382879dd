package models

import (
	"database/sql"
	"time"
)

// User represents a row of the users table.
type User struct {
	ID         string         `db:"id"` // ULID
	Name       string         `db:"name"`
	Job        string         `db:"job"`
	Experience int            `db:"experience"`
	Email      sql.NullString `db:"email"`
	Phone      sql.NullString `db:"phone"`
	CreatedAt  time.Time      `db:"created_at"`
}

// Test represents a row of the tests table: one completed module quiz.
type Test struct {
	ID        string    `db:"id"` // ULID
	UserID    string    `db:"user_id"`
	Module    string    `db:"module"`
	Corrects  int       `db:"corrects"`
	CreatedAt time.Time `db:"created_at"`
}

// Scenario represents a row of the scenarios table: one answered scenario.
type Scenario struct {
	ID        string    `db:"id"` // ULID
	UserID    string    `db:"user_id"`
	IsCorrect bool      `db:"is_correct"`
	CreatedAt time.Time `db:"created_at"`
}
