// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/opcount"
)

const (
	opCholesky = "Cholesky"
	opSolve    = "CholeskyResult.Solve"
)

// CholeskyResult is the outcome of a successful square-root factorization.
type CholeskyResult struct {
	// Factor is the combined factor: L strictly below the diagonal, the square
	// roots on it, Lᵗ strictly above. It is symmetric by construction.
	Factor *matrix.Profile

	// Tally counts the operations of the factorization only.
	Tally opcount.Tally

	lower      [][]float64 // L, n×n, zero above the diagonal
	finiteOnly bool        // NaN/Inf policy applied to Solve's b
}

// Cholesky computes A = L·Lᵗ for a symmetric positive-definite a.
//
// Implementation:
//   - Stage 1: validate square (and symmetry when WithSymmetryCheck is set);
//     expand a into a private dense working copy.
//   - Stage 2: row by row, for j ≤ i:
//     diagonal  L[j,j] = sqrt(a[j,j] - Σ_{k<j} L[j,k]²), failing with
//     ErrNotDecomposable when the radicand is not > 0;
//     off-diag  L[i,j] = (a[j,i] - Σ_{k<j} L[i,k]·L[j,k]) / L[j,j], failing with
//     ErrSingularPivot when L[j,j] == 0.
//   - Stage 3: assemble the combined factor and re-encode it as a Profile.
//
// Counting:
//   - one multiply+add per inner-product term;
//   - one addition for each "a - Σ" subtraction;
//   - one square root per diagonal entry, one division per off-diagonal entry.
//
// Behavior highlights:
//   - Only the upper triangle of a (a[j,i], j ≤ i) is read; symmetry is assumed.
//   - The convention is symmetric: U = Lᵗ, no unit diagonal normalization.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry (opt-in),
//     ErrNotDecomposable, ErrSingularPivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Cholesky(a matrix.Matrix, opts ...Option) (*CholeskyResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}
	if o.checkSymmetry {
		if err := matrix.ValidateSymmetric(a, o.symmetryTol); err != nil {
			return nil, fmt.Errorf("%s: %w", opCholesky, err)
		}
	}
	A, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}

	n := len(A)
	c := opcount.New()
	L := newSquare(n)

	var i, j, k int
	var sum, value float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = 0
			if i == j {
				for k = 0; k < j; k++ {
					sum += L[j][k] * L[j][k]
					c.MulAdd()
				}
				value = A[j][j] - sum
				c.Add()
				if value <= 0 || math.IsNaN(value) {
					return nil, fmt.Errorf("%s: step %d: radicand %g: %w", opCholesky, j, value, ErrNotDecomposable)
				}
				L[j][j] = math.Sqrt(value)
				c.Sqrt()
				continue
			}

			for k = 0; k < j; k++ {
				sum += L[i][k] * L[j][k]
				c.MulAdd()
			}
			if L[j][j] == 0 {
				return nil, fmt.Errorf("%s: entry (%d,%d): %w", opCholesky, i, j, ErrSingularPivot)
			}
			L[i][j] = (A[j][i] - sum) / L[j][j]
			c.Add()
			c.Div()
		}
	}

	// Combined factor: lower part and diagonal from L, upper part from Lᵗ.
	combined := newSquare(n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i >= j {
				combined[i][j] = L[i][j]
			} else {
				combined[i][j] = L[j][i]
			}
		}
	}
	factor, err := encode(combined, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCholesky, err)
	}

	return &CholeskyResult{Factor: factor, Tally: c.Snapshot(), lower: L, finiteOnly: o.finiteOnly()}, nil
}

// Dim returns the factor dimension.
func (r *CholeskyResult) Dim() int { return len(r.lower) }

// Lower returns L as a fresh Dense.
func (r *CholeskyResult) Lower() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(r.lower)
}

// Upper returns U = Lᵗ as a fresh Dense.
func (r *CholeskyResult) Upper() (*matrix.Dense, error) {
	l, err := r.Lower()
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(l)
}

// Reconstruct returns L·Lᵗ, which approximates the factored matrix.
func (r *CholeskyResult) Reconstruct() (matrix.Matrix, error) {
	l, err := r.Lower()
	if err != nil {
		return nil, err
	}
	u, err := matrix.Transpose(l)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(l, u)
}

// ReconstructionError returns max |(L·Lᵗ - a)[i,j]|. Only meaningful for the
// matrix that was factored (or one of the same order).
func (r *CholeskyResult) ReconstructionError(a matrix.Matrix) (float64, error) {
	llt, err := r.Reconstruct()
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(llt, a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCholesky, err)
	}

	return matrix.MaxAbs(diff)
}

// Solve returns x with L·Lᵗ·x = b by forward then backward substitution,
// along with the tally of this solve alone.
//
// Errors:
//   - matrix.ErrDimensionMismatch / matrix.ErrNilMatrix for a bad b;
//   - matrix.ErrNaNInf for a non-finite b unless the factorization ran with
//     WithProfileOptions(matrix.WithNoValidateNaNInf()).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (r *CholeskyResult) Solve(b []float64) ([]float64, opcount.Tally, error) {
	n := r.Dim()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, opcount.Tally{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if r.finiteOnly {
		if err := matrix.ValidateFiniteVec(b); err != nil {
			return nil, opcount.Tally{}, fmt.Errorf("%s: %w", opSolve, err)
		}
	}
	L := r.lower
	c := opcount.New()

	// Forward: L·y = b.
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += L[i][k] * y[k]
			c.MulAdd()
		}
		y[i] = (b[i] - sum) / L[i][i]
		c.Add()
		c.Div()
	}

	// Backward: Lᵗ·x = y, reading Lᵗ[i][k] as L[k][i].
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += L[k][i] * x[k]
			c.MulAdd()
		}
		x[i] = (y[i] - sum) / L[i][i]
		c.Add()
		c.Div()
	}

	return x, c.Snapshot(), nil
}

// newSquare allocates an n×n zero work array.
func newSquare(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	return out
}

// encode re-packs a dense work array into a Profile using the run's options.
func encode(rows [][]float64, o Options) (*matrix.Profile, error) {
	return matrix.NewProfileFromRows(rows, o.profileOpts...)
}
