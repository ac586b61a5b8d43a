// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"github.com/okarpov/paramgate/models"
)

// dispatch resolves and invokes one declared check for one field.
//
// Resolution order:
//  1. the structural "inner" check, handled by the engine itself — it
//     shadows any primitive registered under the same name;
//  2. the primitive registry;
//  3. no implementation found: a silent pass. Unknown check names never
//     fail validation.
//
// The whole field spec is passed through (not just the field key) because
// the structural check reads sibling declarations, e.g. "type", to pick its
// recursive form.
func (e *Engine) dispatch(field models.FieldSpec, decl models.CheckDecl, received models.ReceivedValues, depth int) ([]models.CheckOutcome, error) {
	if decl.Name == models.CheckInner {
		return e.dispatchInner(field, decl.Spec, received, depth)
	}

	if fn, ok := e.primitives[decl.Name]; ok {
		return []models.CheckOutcome{fn(received, field.Name, decl.Spec)}, nil
	}

	e.logger.Debug().
		Str("check", decl.Name).
		Str("field", string(field.Name)).
		Msg("no implementation for declared check, passing through")

	return []models.CheckOutcome{models.Pass()}, nil
}
