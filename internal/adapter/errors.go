package adapter

import "errors"

var (
	// ErrContractNotFound is returned when the server reports that the named
	// contract does not exist.
	ErrContractNotFound = errors.New("contract was not found on server")

	// ErrContractAlreadyExists is returned when registration fails because
	// the contract name is taken.
	ErrContractAlreadyExists = errors.New("contract name already exists on server")

	// ErrBadRequest is returned when the server rejects the request payload.
	ErrBadRequest = errors.New("server rejected the request")
)
