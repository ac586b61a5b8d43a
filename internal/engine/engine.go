// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package engine

import (
	"github.com/okarpov/paramgate/internal/logger"
	"github.com/okarpov/paramgate/models"
)

// DefaultMaxDepth bounds the recursion of nested "inner" contracts. The
// walker has no natural depth bound, so a limit protects the stack when
// contracts or values are config- or caller-controlled.
const DefaultMaxDepth = 64

// CheckFn is a primitive check implementation. It receives the full value
// set of the current (possibly nested) scope, the key of the field under
// validation, and the check's declared spec. It returns the passing outcome
// or a single failing outcome carrying the field key and a message.
type CheckFn func(received models.ReceivedValues, field models.FieldKey, spec models.CheckSpec) models.CheckOutcome

// Engine validates contracts against received value sets.
//
// The primitive registry is copied at construction time and never mutated
// afterwards, so one Engine may serve any number of concurrent passes.
type Engine struct {
	primitives map[string]CheckFn
	maxDepth   int
	logger     *logger.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithMaxDepth overrides the recursion depth limit. Values below 1 are
// ignored.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// New constructs an Engine around the given primitive check registry.
// The registry maps check names (as they appear in contract declarations)
// to their implementations; the structural "inner" check is engine-owned
// and takes precedence over any registry entry of the same name.
func New(primitives map[string]CheckFn, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		primitives: make(map[string]CheckFn, len(primitives)),
		maxDepth:   DefaultMaxDepth,
		logger:     log,
	}
	for name, fn := range primitives {
		e.primitives[name] = fn
	}

	for _, opt := range opts {
		opt(e)
	}

	log.Debug().Int("checks", len(e.primitives)).Int("max_depth", e.maxDepth).Msg("validation engine created")
	return e
}
