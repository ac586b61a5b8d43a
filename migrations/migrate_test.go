// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "contracts.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	// contracts table exists and accepts rows
	if _, err := db.Exec(`INSERT INTO contracts (contract_id, name, spec) VALUES ('id-1', 'greeting-contract', '[]')`); err != nil {
		t.Fatalf("expected contracts table to accept inserts, got: %v", err)
	}

	// name is unique
	if _, err := db.Exec(`INSERT INTO contracts (contract_id, name, spec) VALUES ('id-2', 'greeting-contract', '[]')`); err == nil {
		t.Error("expected unique constraint violation on duplicate name")
	}

	// re-running migrations is a no-op
	if err := Migrate(db, "sqlite3"); err != nil {
		t.Errorf("expected re-run to be a no-op, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}
	if !strings.Contains(err.Error(), "setting dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose will fail querying the version table on an unprimed mock
	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
