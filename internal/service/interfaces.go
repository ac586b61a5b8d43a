package service

import (
	"context"

	"github.com/okarpov/paramgate/models"
)

// ContractService manages named contracts: registration, lookup, listing,
// and removal. Lookups are served from an in-memory cache backed by the
// contract store.
type ContractService interface {
	RegisterContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error)
	GetContract(ctx context.Context, name string) (models.StoredContract, error)
	ListContracts(ctx context.Context) ([]models.StoredContract, error)
	DeleteContract(ctx context.Context, name string) error

	// RefreshCache reloads the whole contract cache from the store. Called
	// periodically by the background refresh worker.
	RefreshCache(ctx context.Context) error
}

// ValidationService runs validation passes: either against an inline
// contract supplied with the request, or against a stored contract
// referenced by name.
//
// A non-empty report means the values violated the contract; the error
// return is reserved for operational failures (unknown contract name,
// nesting depth exceeded).
type ValidationService interface {
	Validate(ctx context.Context, contract models.Contract, values models.ReceivedValues) (models.ValidationReport, error)
	ValidateStored(ctx context.Context, name string, values models.ReceivedValues) (models.ValidationReport, error)
}
