// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

// Package engine implements the recursive contract walker at the heart of
// paramgate.
//
// An Engine is constructed once with an immutable registry of primitive
// check functions and is then safe to share across concurrent validation
// passes: it holds no per-pass state.
//
// A validation pass walks the contract field by field. Fields that are
// optional and absent from the received values are skipped entirely (none
// of their checks run). Every other field has each of its declared checks
// dispatched in order:
//
//   - the structural "inner" check is handled by the engine itself and
//     shadows any primitive registered under the same name;
//   - all other names are resolved against the primitive registry;
//   - names with no implementation pass silently. This permissiveness is
//     deliberate: contract declarations may carry keys aimed at newer or
//     older deployments, and a typo in a check name must not reject
//     otherwise valid input.
//
// The "inner" check recurses into nested maps and lists with sub-contracts
// synthesized on the fly, so a single pass can produce outcomes for fields
// at any nesting depth. All outcomes end up in one flat, order-preserving
// sequence which Consolidate folds into a per-field ValidationReport.
package engine
