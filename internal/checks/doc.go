// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

// Package checks ships the standard library of primitive check predicates:
// required, type, format, range, length, and inclusion.
//
// The engine itself knows nothing about these — it only invokes whatever
// functions the registry maps a declared check name to. Registry builds
// that mapping once at startup; the returned map must not be mutated after
// it has been handed to an engine.
//
// All predicates except "required" are lenient about nil: a field holding
// an explicit null passes type, format, range, length, and inclusion, and
// only "required" reports it. This keeps a single missing value from
// producing a pile of unrelated messages.
package checks
