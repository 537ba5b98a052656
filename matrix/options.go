// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for factorization and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the relative pivot threshold of LU:
	// a pivot p with |p| <= DefaultPivotTolerance * ‖A‖∞ is treated as zero.
	// A purely relative guard keeps the decision scale-invariant.
	DefaultPivotTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid  = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicNilOptionApplied = "matrix: nil Option"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the relative pivot threshold used by LU/Solve/Inverse.
// tol == 0 restores exact-zero detection only.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// NewMatrixOptions resolves user options into an Options value (exported for
// callers that want to inspect the effective policy).
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// PivotTolerance reports the effective relative pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol: DefaultPivotTolerance,
	}
}

// gatherOptions applies user options over defaults in call order (last wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn == nil {
			panic(panicNilOptionApplied)
		}
		fn(&o)
	}

	return o
}
