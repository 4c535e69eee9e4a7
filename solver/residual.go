// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsolve/matrix"
	"gonum.org/v1/gonum/floats"
)

// Residual returns ‖a·x − b‖∞. The product is not instrumented.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a matrix.Matrix, x, b []float64) (float64, error) {
	ax, err := matrix.MatVec(a, x, nil)
	if err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return 0, fmt.Errorf("Residual: %w", err)
	}

	return floats.Distance(ax, b, math.Inf(1)), nil
}

// ForwardError returns ‖x − want‖∞, the distance of a computed solution from
// a known exact one (e.g. the ones vector for b = A·1).
func ForwardError(x, want []float64) (float64, error) {
	if err := matrix.ValidateVecLen(want, len(x)); err != nil {
		return 0, fmt.Errorf("ForwardError: %w", err)
	}

	return floats.Distance(x, want, math.Inf(1)), nil
}
