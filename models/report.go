// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package models

import (
	"sort"
	"strings"
)

// ValidationReport maps each failing field to the ordered list of messages
// its checks produced.
//
// Message order within one field is the reverse of check evaluation order:
// the consolidation step prepends each new failure, so the last-evaluated
// failure appears first. Callers relying on message order must account for
// this; it is part of the report's documented contract.
//
// No ordering is guaranteed across different fields.
type ValidationReport map[FieldKey][]string

// Prepend records message as the new first entry for field, creating the
// field's list if it does not exist yet.
func (r ValidationReport) Prepend(field FieldKey, message string) {
	r[field] = append([]string{message}, r[field]...)
}

// Empty reports whether the report contains no failures.
func (r ValidationReport) Empty() bool {
	return len(r) == 0
}

// Message renders the report as human-readable text: one line per field in
// the form "field: msg1", with additional messages on tab-indented
// continuation lines, lines joined by newlines. Fields are sorted by key so
// the rendering is deterministic.
func (r ValidationReport) Message() string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, string(f)+": "+strings.Join(r[FieldKey(f)], "\n\t"))
	}

	return strings.Join(lines, "\n")
}
