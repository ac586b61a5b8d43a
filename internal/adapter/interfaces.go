// Package adapter provides a Go client for the paramgate HTTP API. It is
// used by other services that want to validate parameter sets against
// contracts hosted on a central paramgate instance.
package adapter

import (
	"context"

	"github.com/okarpov/paramgate/models"
)

// Client is the outbound interface to a remote paramgate service.
type Client interface {
	// RegisterContract registers a named contract and returns the stored
	// record with server-assigned fields.
	RegisterContract(ctx context.Context, contract models.StoredContract) (models.StoredContract, error)

	// GetContract fetches a stored contract by name.
	GetContract(ctx context.Context, name string) (models.StoredContract, error)

	// ListContracts fetches all stored contracts.
	ListContracts(ctx context.Context) ([]models.StoredContract, error)

	// DeleteContract removes a stored contract by name.
	DeleteContract(ctx context.Context, name string) error

	// Validate runs an inline validation pass on the server. A response with
	// Valid=false is a normal result, not an error.
	Validate(ctx context.Context, contract models.Contract, values models.ReceivedValues) (models.ValidateResponse, error)

	// ValidateStored validates values against a stored contract by name.
	ValidateStored(ctx context.Context, name string, values models.ReceivedValues) (models.ValidateResponse, error)
}
