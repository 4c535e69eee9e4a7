// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance callers pass to ValidateSymmetric when
	// they have no better bound (solver.WithSymmetryCheck in cmd/lvsolve).
	DefaultEpsilon = 1e-9

	// DefaultZeroTolerance is the magnitude below which an entry counts as a
	// leading zero when encoding a profile (strict: |v| < tol).
	DefaultZeroTolerance = MachineEpsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicZeroTolInvalid = "matrix: WithZeroTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	zeroTol        float64 // >= 0; DefaultZeroTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ZeroTolerance returns the profile leading-zero threshold.
func (o Options) ZeroTolerance() float64 { return o.zeroTol }

// ValidateNaNInf reports whether finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithZeroTolerance sets the leading-zero threshold used by NewProfile.
// With tol == 0 nothing is negligible and every row is stored in full.
// Panics on negative or non-finite tol.
func WithZeroTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicZeroTolInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// This flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroTol:        DefaultZeroTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
