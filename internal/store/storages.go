package store

import (
	"context"

	"github.com/okarpov/paramgate/internal/config"
	"github.com/okarpov/paramgate/internal/logger"
)

// Storages aggregates all repositories backed by the contract store
// database.
type Storages struct {
	ContractRepository ContractRepository
}

// NewStorages opens the configured database, runs pending migrations, and
// wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, *DB, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return &Storages{
		ContractRepository: NewContractRepository(db, log),
	}, db, nil
}
