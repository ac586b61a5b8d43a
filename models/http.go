// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package models

import "time"

// StoredContract is a named contract registered with the service and
// persisted in the contract store. The Name is unique; the surrounding
// operation framework refers to contracts by it.
type StoredContract struct {
	ContractID string    `json:"contract_id,omitempty"`
	Name       string    `json:"name"`
	Contract   Contract  `json:"contract"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// ValidateRequest is the body of an inline validation call: a full contract
// together with the received values to validate against it.
type ValidateRequest struct {
	Contract Contract       `json:"contract"`
	Values   ReceivedValues `json:"values"`
}

// ValidateValuesRequest is the body of a stored-contract validation call.
// The contract itself is referenced by name in the URL.
type ValidateValuesRequest struct {
	Values ReceivedValues `json:"values"`
}

// ValidateResponse reports the result of one validation pass. Errors is
// omitted when the values satisfied the contract.
type ValidateResponse struct {
	Valid  bool             `json:"valid"`
	Errors ValidationReport `json:"errors,omitempty"`
}
