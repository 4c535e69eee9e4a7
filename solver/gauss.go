// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/opcount"
)

const opGauss = "Gauss"

// GaussResult is the outcome of a successful elimination.
type GaussResult struct {
	// Upper is the eliminated, upper-triangular system matrix.
	Upper *matrix.Profile

	// RHS is the right-hand side after row swaps and elimination.
	RHS []float64

	// Solution is x with A·x = b; nil under WithTriangularOnly.
	Solution []float64

	// Permutation[i] is the original index of the row that ended at position i.
	Permutation []int

	// Elimination and BackSubstitution split Tally by phase.
	Elimination      opcount.Tally
	BackSubstitution opcount.Tally
	Tally            opcount.Tally
}

// Swapped reports whether any row interchange took place.
func (r *GaussResult) Swapped() bool { return r.Tally.Swaps > 0 }

// Gauss solves a·x = b by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate square a, len(b) == n and, under the NaN/Inf policy,
//     finite b; copy both into private work arrays.
//   - Stage 2: for each column i, pick the row p ≥ i with the largest |a[p,i]|
//     (first one wins on ties). If that magnitude is below the pivot tolerance,
//     or any candidate is NaN, fail with ErrDegenerate. Swap rows i and p of a and b when p != i.
//     For every row k > i: f = a[k,i]/a[i,i]; a[k,i] = 0;
//     a[k,j] -= f·a[i,j] for j > i; b[k] -= f·b[i].
//   - Stage 3: back substitution x[i] = (b[i] - Σ_{j>i} a[i,j]·x[j]) / a[i,i],
//     unless WithTriangularOnly was given.
//   - Stage 4: re-encode the triangular matrix as a Profile.
//
// Counting:
//   - one division per multiplier f and per solution component;
//   - one multiply+add per updated entry of a, of b, and per back-substitution term;
//   - one swap per row interchange.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf (non-finite b), ErrDegenerate.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Gauss(a matrix.Matrix, b []float64, opts ...Option) (*GaussResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}
	if o.finiteOnly() {
		if err := matrix.ValidateFiniteVec(b); err != nil {
			return nil, fmt.Errorf("%s: rhs: %w", opGauss, err)
		}
	}
	A, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	c := opcount.New()
	var i, j, k, maxRow int
	var maxElem, factor float64
	for i = 0; i < n; i++ {
		// Partial pivoting: largest magnitude in column i at or below row i.
		// A NaN candidate poisons the column and is reported as degenerate.
		maxRow = i
		maxElem = math.Abs(A[i][i])
		for k = i + 1; k < n && !math.IsNaN(maxElem); k++ {
			if v := math.Abs(A[k][i]); v > maxElem || math.IsNaN(v) {
				maxElem = v
				maxRow = k
			}
		}
		if math.IsNaN(maxElem) || matrix.Negligible(maxElem, o.pivotTol) {
			return nil, fmt.Errorf("%s: column %d: max pivot %g: %w", opGauss, i, maxElem, ErrDegenerate)
		}

		if maxRow != i {
			A[i], A[maxRow] = A[maxRow], A[i]
			rhs[i], rhs[maxRow] = rhs[maxRow], rhs[i]
			perm[i], perm[maxRow] = perm[maxRow], perm[i]
			c.Swap()
		}

		for k = i + 1; k < n; k++ {
			factor = A[k][i] / A[i][i]
			c.Div()
			A[k][i] = 0
			for j = i + 1; j < n; j++ {
				A[k][j] -= factor * A[i][j]
				c.MulAdd()
			}
			rhs[k] -= factor * rhs[i]
			c.MulAdd()
		}
	}
	elimination := c.Snapshot()

	var solution []float64
	if o.backSubstitute {
		solution = make([]float64, n)
		for i = n - 1; i >= 0; i-- {
			solution[i] = rhs[i]
			for j = i + 1; j < n; j++ {
				solution[i] -= A[i][j] * solution[j]
				c.MulAdd()
			}
			solution[i] /= A[i][i]
			c.Div()
		}
	}
	total := c.Snapshot()

	upper, err := encode(A, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGauss, err)
	}

	return &GaussResult{
		Upper:            upper,
		RHS:              rhs,
		Solution:         solution,
		Permutation:      perm,
		Elimination:      elimination,
		BackSubstitution: total.Minus(elimination),
		Tally:            total,
	}, nil
}
