// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"errors"

	"github.com/okarpov/paramgate/models"
)

// ErrDepthExceeded is returned when a validation pass recurses through more
// nested "inner" levels than the engine's configured maximum. It signals a
// pathological or malicious contract/value pair, not a validation failure,
// and carries no report.
var ErrDepthExceeded = errors.New("contract nesting depth exceeded")

// ValidationError is the failure result of Engine.Valid: one or more checks
// reported a violation. It is the expected, recoverable outcome of a
// validation pass and carries the consolidated per-field report.
type ValidationError struct {
	Report models.ValidationReport
}

// Error renders the report in the canonical multi-line form.
func (e *ValidationError) Error() string {
	return "validation failed:\n" + e.Report.Message()
}
