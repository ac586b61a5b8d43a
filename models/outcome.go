// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package models

// CheckOutcome is the result of one check invocation against one field.
//
// The zero value is the passing outcome. A failing outcome carries the key
// of the field that violated the check and a human-readable message.
// Structural checks produce sequences of outcomes (one per nested field or
// list element); the walker flattens those into the same outcome stream as
// scalar checks.
type CheckOutcome struct {
	Field   FieldKey `json:"field,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Pass returns the passing outcome.
func Pass() CheckOutcome {
	return CheckOutcome{}
}

// Fail returns a failing outcome for field with the given message.
func Fail(field FieldKey, message string) CheckOutcome {
	return CheckOutcome{Field: field, Message: message}
}

// Valid reports whether the outcome is a pass.
func (o CheckOutcome) Valid() bool {
	return o.Message == ""
}
