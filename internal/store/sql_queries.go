package store

import (
	sq "github.com/Masterminds/squirrel"
)

// contractColumns lists the columns of the contracts table in scan order.
var contractColumns = []string{"contract_id", "name", "spec", "created_at", "updated_at"}

// buildInsertContractQuery builds the INSERT for a new named contract.
// The spec argument is the JSON-encoded contract document. Timestamps are
// assigned by the database; the RETURNING clause hands the canonical record
// back to the caller.
func buildInsertContractQuery(ph sq.PlaceholderFormat, contractID, name string, spec []byte) (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(ph).
		Insert("contracts").
		Columns("contract_id", "name", "spec").
		Values(contractID, name, spec).
		Suffix("RETURNING contract_id, name, spec, created_at, updated_at").
		ToSql()
}

// buildSelectContractByNameQuery builds the lookup of a single contract by
// its unique name.
func buildSelectContractByNameQuery(ph sq.PlaceholderFormat, name string) (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(ph).
		Select(contractColumns...).
		From("contracts").
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildListContractsQuery builds the listing of all stored contracts,
// ordered by name for a stable response.
func buildListContractsQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(ph).
		Select(contractColumns...).
		From("contracts").
		OrderBy("name ASC").
		ToSql()
}

// buildDeleteContractQuery builds the removal of a stored contract by name.
func buildDeleteContractQuery(ph sq.PlaceholderFormat, name string) (string, []any, error) {
	return sq.StatementBuilder.
		PlaceholderFormat(ph).
		Delete("contracts").
		Where(sq.Eq{"name": name}).
		ToSql()
}
