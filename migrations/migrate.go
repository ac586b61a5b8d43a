package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations to db. The driver name selects the
// goose dialect; an empty driver defaults to PostgreSQL.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect := driver
	if dialect == "" {
		dialect = "pgx"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
