// SPDX-License-Identifier: MIT

package matrix

// Hilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1), 0-indexed.
//
// H is symmetric positive definite for every n, and its condition number
// grows roughly like e^(3.5n), which makes it the classic stress input for
// direct solvers. Pure and deterministic.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Hilbert(n int) (*Dense, error) {
	h, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opHilbert, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			h.data[i*n+j] = 1.0 / float64(i+j+1)
		}
	}

	return h, nil
}
