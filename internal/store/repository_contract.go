// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/models"
)

// contractRepository is the SQL-backed implementation of
// [ContractRepository]. It persists contract documents as JSON in the
// "contracts" table and works against both supported drivers.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type contractRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContractRepository constructs a [ContractRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewContractRepository(db *DB, logger *logger.Logger) ContractRepository {
	logger.Debug().Msg("creating contract repository")
	return &contractRepository{
		db:     db,
		logger: logger,
	}
}

// SaveContract persists a new named contract and returns the fully populated
// [models.StoredContract] with server-assigned fields (ContractID,
// CreatedAt, UpdatedAt).
//
// The contract document is JSON-encoded into the spec column; the INSERT
// returns all columns via a RETURNING clause, so the caller receives the
// canonical database representation of the newly registered contract.
//
// Error handling:
//   - unique-constraint violation on name → [ErrContractAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *contractRepository) SaveContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error) {
	log := logger.FromContext(ctx)

	specRaw, err := json.Marshal(contract.Contract)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.SaveContract").Msg("error: cannot encode contract document")
		return models.StoredContract{}, fmt.Errorf("%w: %w", ErrEncodingContract, err)
	}

	contractID := contract.ContractID
	if contractID == "" {
		contractID = uuid.NewString()
	}

	query, args, err := buildInsertContractQuery(r.db.placeholder(), contractID, contract.Name, specRaw)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.SaveContract").Msg("error: cannot build query")
		return models.StoredContract{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// save contract in db
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*contractRepository.SaveContract").
			Bool("retryable", r.retryable(err)).
			Msg("error: insert failed")

		if uniqueViolation(err) {
			return models.StoredContract{}, ErrContractAlreadyExists
		}
		return models.StoredContract{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved contract from db
	saved, err := scanStoredContract(row)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.SaveContract").Msg("error: scanning error")
		return models.StoredContract{}, err
	}

	return saved, nil
}

// FindContractByName retrieves a stored contract whose name matches the one
// provided.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrContractNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Spec column holding invalid JSON → wrapped with [ErrDecodingContract].
func (r *contractRepository) FindContractByName(ctx context.Context, name string) (models.StoredContract, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContractByNameQuery(r.db.placeholder(), name)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.FindContractByName").Msg("error: cannot build query")
		return models.StoredContract{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// find contract by name
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*contractRepository.FindContractByName").
			Bool("retryable", r.retryable(err)).
			Msg("error: select failed")
		return models.StoredContract{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found contract from db
	found, err := scanStoredContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredContract{}, ErrContractNotFound
		}
		log.Err(err).Str("func", "*contractRepository.FindContractByName").Msg("error: scanning error")
		return models.StoredContract{}, err
	}

	return found, nil
}

// ListContracts returns all stored contracts ordered by name.
func (r *contractRepository) ListContracts(ctx context.Context) ([]models.StoredContract, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContractsQuery(r.db.placeholder())
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.ListContracts").Msg("error: cannot build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*contractRepository.ListContracts").
			Bool("retryable", r.retryable(err)).
			Msg("error: select failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contracts := make([]models.StoredContract, 0)
	for rows.Next() {
		var (
			contract models.StoredContract
			specRaw  []byte
		)
		if err := rows.Scan(&contract.ContractID, &contract.Name, &specRaw, &contract.CreatedAt, &contract.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*contractRepository.ListContracts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal(specRaw, &contract.Contract); err != nil {
			log.Err(err).Str("func", "*contractRepository.ListContracts").Str("name", contract.Name).Msg("error: invalid contract document")
			return nil, fmt.Errorf("%w: %w", ErrDecodingContract, err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*contractRepository.ListContracts").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contracts, nil
}

// DeleteContract removes a stored contract by name. A delete that affects no
// rows reports [ErrContractNotFound].
func (r *contractRepository) DeleteContract(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteContractQuery(r.db.placeholder(), name)
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.DeleteContract").Msg("error: cannot build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*contractRepository.DeleteContract").
			Bool("retryable", r.retryable(err)).
			Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*contractRepository.DeleteContract").Msg("error: rows affected unavailable")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrContractNotFound
	}

	return nil
}

// retryable reports the classifier's verdict for logging purposes.
func (r *contractRepository) retryable(err error) bool {
	if r.db == nil || r.db.errorClassificator == nil {
		return false
	}
	return r.db.errorClassificator.Classify(err) == Retryable
}

// scanStoredContract scans one contracts-table row and decodes the JSON spec
// column into the contract document.
func scanStoredContract(row *sql.Row) (models.StoredContract, error) {
	var (
		contract models.StoredContract
		specRaw  []byte
	)
	if err := row.Scan(&contract.ContractID, &contract.Name, &specRaw, &contract.CreatedAt, &contract.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredContract{}, err
		}
		return models.StoredContract{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(specRaw, &contract.Contract); err != nil {
		return models.StoredContract{}, fmt.Errorf("%w: %w", ErrDecodingContract, err)
	}

	return contract, nil
}
