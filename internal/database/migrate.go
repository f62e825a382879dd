package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql" // mysql migration driver
	_ "github.com/golang-migrate/migrate/v4/source/file"    // file migration source
)

// RunMigrations applies all pending up-migrations from migrationsDir.
// An already up-to-date database is not an error.
func RunMigrations(dsn string, migrationsDir string) error {
	m, err := migrate.New("file://"+migrationsDir, "mysql://"+dsn)
	if err != nil {
		return fmt.Errorf("could not initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
