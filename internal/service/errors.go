package service

import "errors"

var (
	// ErrEmptyContractName is returned when a contract operation is attempted
	// without a name.
	ErrEmptyContractName = errors.New("contract name is empty")

	// ErrInvalidContractDocument is returned when a contract document fails
	// the structural sanity check before registration (e.g. a field without
	// a name or a check without a name).
	ErrInvalidContractDocument = errors.New("invalid contract document")
)
