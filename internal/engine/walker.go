// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"github.com/okarpov/paramgate/models"
)

// Validate walks the contract against the received values and returns the
// full, order-preserving, flattened outcome sequence across all fields.
//
// Per-field behaviour:
//   - optional and absent (key missing or value nil): the field contributes
//     no outcomes at all — none of its checks run;
//   - everything else, including required-and-absent: every declared check
//     is dispatched in order. Absence itself is not special-cased here; the
//     "required" check is the one that detects and reports it.
//
// The only error condition is the recursion depth guard (ErrDepthExceeded);
// validation failures are ordinary outcomes, not errors.
func (e *Engine) Validate(contract models.Contract, received models.ReceivedValues) ([]models.CheckOutcome, error) {
	return e.validate(contract, received, 0)
}

func (e *Engine) validate(contract models.Contract, received models.ReceivedValues, depth int) ([]models.CheckOutcome, error) {
	if depth > e.maxDepth {
		return nil, ErrDepthExceeded
	}

	var outcomes []models.CheckOutcome
	for _, field := range contract {
		value, present := received.Lookup(field.Name)
		absent := !present || value == nil

		// an optional field that was not supplied is not validated at all
		if absent && !field.Required() {
			continue
		}

		for _, decl := range field.Checks {
			dispatched, err := e.dispatch(field, decl, received, depth)
			if err != nil {
				return nil, err
			}
			outcomes = append(outcomes, dispatched...)
		}
	}

	return outcomes, nil
}

// Valid runs a full validation pass. It returns nil when every produced
// outcome is a pass (including the empty-contract case), a *ValidationError
// with the consolidated report when any check failed, or ErrDepthExceeded
// when the depth guard tripped.
func (e *Engine) Valid(contract models.Contract, received models.ReceivedValues) error {
	outcomes, err := e.Validate(contract, received)
	if err != nil {
		return err
	}

	report := Consolidate(outcomes)
	if report.Empty() {
		return nil
	}

	return &ValidationError{Report: report}
}
