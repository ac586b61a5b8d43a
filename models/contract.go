// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

// Package models defines the shared data model of paramgate: contracts,
// received value sets, check outcomes, and validation reports.
//
// A Contract is an ordered list of field specifications. Each field carries
// an ordered list of named checks with check-specific configuration. The
// validation engine walks a Contract against a ReceivedValues set and
// produces a flat sequence of CheckOutcome values, which is consolidated
// into a per-field ValidationReport.
//
// Contracts and received value sets are read-only to the engine: a
// validation pass never mutates either of them.
package models

// FieldKey names a field both in a contract and in a received value set.
// Keys are compared by plain equality; no normalization is applied.
type FieldKey string

// CheckSpec is the configuration attached to a single (field, check) pair.
// Its shape is check-specific and opaque to the contract walker: a boolean
// for "required", a range descriptor for "range", a nested contract
// description for the structural "inner" check, and so on.
type CheckSpec any

// CheckDecl is one named check declared on a field, together with its
// configuration.
type CheckDecl struct {
	Name string    `json:"check"`
	Spec CheckSpec `json:"spec,omitempty"`
}

// FieldSpec describes a single contract field: its key and the ordered
// sequence of checks declared on it.
//
// Check order matters in one place only: a structural check may read a
// sibling declaration (e.g. the "type" entry) out of the same sequence to
// decide which recursive form applies.
type FieldSpec struct {
	Name   FieldKey    `json:"name"`
	Checks []CheckDecl `json:"checks"`
}

// CheckSpecByName returns the spec of the first check declared under name,
// and whether such a declaration exists.
func (f FieldSpec) CheckSpecByName(name string) (CheckSpec, bool) {
	for _, c := range f.Checks {
		if c.Name == name {
			return c.Spec, true
		}
	}
	return nil, false
}

// Required reports whether the field declares a truthy "required" check.
// A field without a "required" declaration is optional.
func (f FieldSpec) Required() bool {
	spec, ok := f.CheckSpecByName(CheckRequired)
	return ok && IsTruthy(spec)
}

// Contract is an ordered sequence of field specifications. It is constructed
// by the declaration layer before any validation pass and never mutated by
// the engine.
type Contract []FieldSpec

// ReceivedValues is the key-addressable value set supplied by the caller for
// one validation pass. Read-only to the engine.
type ReceivedValues map[FieldKey]any

// Lookup returns the value stored under key and whether the key is present
// at all. A present key holding a nil value is reported as (nil, true);
// callers that treat null as absence must check the value themselves.
func (r ReceivedValues) Lookup(key FieldKey) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Names of the check declarations the engine itself gives meaning to.
// All other check names are resolved against the primitive registry.
const (
	// CheckRequired marks a field as mandatory. Its truthiness also controls
	// whether an absent field is validated at all.
	CheckRequired = "required"

	// CheckType declares the expected value type. The structural "inner"
	// check reads it to distinguish the map-shaped from the list-shaped form.
	CheckType = "type"

	// CheckInner is the structural check: it recurses into a nested map or
	// list value with a synthesized sub-contract.
	CheckInner = "inner"
)

// TypeList is the CheckType spec value that selects the list-shaped form of
// the structural "inner" check.
const TypeList = "list"

// IsTruthy reports whether a check spec counts as "set" for the purposes of
// the required flag: anything except nil and false.
func IsTruthy(spec CheckSpec) bool {
	if spec == nil {
		return false
	}
	if b, ok := spec.(bool); ok {
		return b
	}
	return true
}
