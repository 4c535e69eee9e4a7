// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrNotDecomposable is returned by Cholesky when a diagonal pivot
	// a[j,j] - Σ L[j,k]² is not strictly positive: the input is not
	// positive definite.
	ErrNotDecomposable = errors.New("solver: matrix is not LU(sq) decomposable")

	// ErrSingularPivot is returned when a triangular factor diagonal entry
	// needed as a divisor is exactly zero.
	ErrSingularPivot = errors.New("solver: zero pivot on factor diagonal")

	// ErrDegenerate is returned by Gauss when every pivot candidate of a
	// column is below the pivot tolerance in magnitude.
	ErrDegenerate = errors.New("solver: degenerate matrix")
)

// FailureKind is the diagnostic category of a failed run.
type FailureKind int

const (
	// NoFailure means err == nil.
	NoFailure FailureKind = iota
	// NotDecomposable: non-positive pivot in the square-root factorization.
	NotDecomposable
	// SingularPivot: zero divisor on a factor diagonal.
	SingularPivot
	// Degenerate: no usable pivot during elimination.
	Degenerate
	// InvalidInput: shape, nil or numeric-policy violation caught before computing.
	InvalidInput
)

var failureNames = map[FailureKind]string{
	NoFailure:       "success",
	NotDecomposable: "non-decomposable matrix",
	SingularPivot:   "singular pivot",
	Degenerate:      "degenerate matrix",
	InvalidInput:    "invalid input",
}

// String returns the human-readable category.
func (k FailureKind) String() string {
	if s, ok := failureNames[k]; ok {
		return s
	}

	return "unknown failure"
}

// KindOf classifies err.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return NoFailure
	case errors.Is(err, ErrNotDecomposable):
		return NotDecomposable
	case errors.Is(err, ErrSingularPivot):
		return SingularPivot
	case errors.Is(err, ErrDegenerate):
		return Degenerate
	default:
		return InvalidInput
	}
}
