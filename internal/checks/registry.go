// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package checks

import (
	"github.com/okarpov/paramgate/internal/engine"
)

// Registry builds the primitive check registry handed to the validation
// engine at startup. Check names are the identifiers used in contract
// declarations.
//
// The engine copies the map at construction time; after that the registry
// is immutable configuration and safe for concurrent passes.
func Registry() map[string]engine.CheckFn {
	return map[string]engine.CheckFn{
		"required":  Required,
		"type":      Type,
		"format":    Format,
		"range":     Range,
		"length":    Length,
		"inclusion": Inclusion,
	}
}
