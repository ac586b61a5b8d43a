package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContractAlreadyExists is returned when an attempt to register a new
	// contract fails because a contract with the same name is already stored.
	ErrContractAlreadyExists = errors.New("contract name already exists")

	// ErrContractNotFound is returned when a query or delete targets a
	// contract name that does not exist in the database.
	ErrContractNotFound = errors.New("contract was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan contract row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan contract rows")

	// ErrEncodingContract is returned when the contract document cannot be
	// serialized to JSON before writing it to the spec column.
	ErrEncodingContract = errors.New("failed to encode contract document")

	// ErrDecodingContract is returned when the spec column read from the
	// database does not hold a valid contract document.
	ErrDecodingContract = errors.New("failed to decode contract document")
)
