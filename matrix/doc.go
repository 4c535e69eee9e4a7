// Package matrix provides the storage layer of the direct solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Profile: the skyline encoding of a square matrix, storing each row from
//     its first non-negligible column to the end, with lossless round-trips
//     to Dense and on-demand row widening.
//   - Kernels: Mul, Transpose, and MatVec, the latter instrumented through an
//     opcount.Counter.
//   - Hilbert: the classic ill-conditioned test matrix.
//
// All public functions validate their inputs and return sentinel errors
// (see errors.go) instead of panicking.
package matrix
