package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/okarpov/paramgate/internal/config"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/migrations"
)

// DB wraps a database/sql connection together with the driver name it was
// opened with. The driver name selects the goose migration dialect and the
// squirrel placeholder format.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Connect opens a database connection according to the configured driver.
// An empty driver defaults to PostgreSQL.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "", "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate runs all embedded goose migrations against the connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholder returns the squirrel placeholder format matching the driver:
// $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == "sqlite3" {
		return sq.Question
	}
	return sq.Dollar
}
