// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Notes:
//   - The solver Setting can also be replaced later with SetSetting; options
//     only fix the initial value.
//   - The worker limit bounds the per-column fan-out of IterativeSolve. Direct
//     solves are sequential regardless.
package matrix

import (
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHint is the nominal element count used to size sparse storage.
	DefaultHint = 0

	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers at construction.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSettingInvalid = "matrix: WithSetting: setting does not validate"
	panicLoggerNil      = "matrix: WithLogger: logger must not be nil"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 0"
	panicHintInvalid    = "matrix: WithHint: hint must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	setting Setting      // DefaultSetting()
	logger  *slog.Logger // slog.Default()
	workers int          // DefaultWorkers → GOMAXPROCS
	hint    int          // DefaultHint
}

// WithSetting sets the initial solver setting.
// Panics if s does not validate.
func WithSetting(s Setting) Option {
	if err := s.Validate(); err != nil {
		panic(panicSettingInvalid)
	}

	return func(o *Options) { o.setting = s }
}

// WithLogger routes the matrix diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers bounds the number of right-hand-side columns solved concurrently
// by IterativeSolve. Zero selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithHint sets the nominal element count. Sparse storage reserves that many
// triplet records up front; dense storage ignores it beyond reporting it back.
func WithHint(n int) Option {
	if n < 0 {
		panic(panicHintInvalid)
	}

	return func(o *Options) { o.hint = n }
}

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		setting: DefaultSetting(),
		logger:  slog.Default(),
		workers: DefaultWorkers,
		hint:    DefaultHint,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
