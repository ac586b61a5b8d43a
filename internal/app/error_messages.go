// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

// Package app contains shared application-layer constants used across the
// paramgate server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgContractNotFound is returned when a read, delete, or validation
	// operation targets a contract name that is not registered.
	MsgContractNotFound = "contract was not found"

	// MsgContractAlreadyExists is returned when a registration attempt is
	// rejected because the requested contract name is already in use.
	MsgContractAlreadyExists = "contract name already exists"
)
