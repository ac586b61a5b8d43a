// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"github.com/okarpov/paramgate/models"
)

// Consolidate reduces a flat outcome sequence into a per-field report.
//
// Passing outcomes are dropped. Each failing outcome is PREPENDED to its
// field's message list, in the order outcomes were produced. For a field
// with several failing checks the final message order is therefore the
// reverse of evaluation order: the last-evaluated failure comes first.
// Downstream consumers depend on this ordering; do not change it to append.
func Consolidate(outcomes []models.CheckOutcome) models.ValidationReport {
	report := make(models.ValidationReport)
	for _, outcome := range outcomes {
		if outcome.Valid() {
			continue
		}
		report.Prepend(outcome.Field, outcome.Message)
	}
	return report
}
