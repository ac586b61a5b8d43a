package store

import (
	"context"

	"github.com/okarpov/paramgate/models"
)

// ContractRepository is the persistence boundary for named validation
// contracts. Implementations must return the package sentinel errors for
// well-known failure conditions so that callers can match them with
// [errors.Is].
type ContractRepository interface {
	// SaveContract persists a new named contract and returns the stored
	// record with server-assigned fields (ContractID, CreatedAt, UpdatedAt).
	// Returns [ErrContractAlreadyExists] when the name is taken.
	SaveContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error)

	// FindContractByName retrieves a stored contract by its unique name.
	// Returns [ErrContractNotFound] when no such contract exists.
	FindContractByName(ctx context.Context, name string) (models.StoredContract, error)

	// ListContracts returns all stored contracts ordered by name.
	ListContracts(ctx context.Context) ([]models.StoredContract, error)

	// DeleteContract removes a stored contract by name.
	// Returns [ErrContractNotFound] when no such contract exists.
	DeleteContract(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Driver-specific implementations inspect the underlying error.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
