// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by Dense and Profile storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Both storage layouts of this package implement it:
//   - *Dense   row-major flat buffer (working copies, results);
//   - *Profile skyline rows from the first non-zero column (storage, display).
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)),
// and Profile.Set which may widen a row in O(n).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
