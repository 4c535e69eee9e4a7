// SPDX-License-Identifier: MIT

// Package solver implements the two direct methods for Ax = b on matrices
// held in profile (skyline) or dense form:
//
//   - Cholesky: the square-root (LU-sq) factorization of a symmetric
//     positive-definite matrix, A = L·Lᵗ, returned as one combined factor;
//   - Gauss: Gaussian elimination with partial (row) pivoting followed by
//     back substitution.
//
// Every run owns a fresh opcount.Counter and reports its Tally in the result
// record, so two identical calls always report identical counts.
//
// Both routines expand their input into a private dense working copy, compute
// on it, and re-encode the output as a new *matrix.Profile. The input is never
// mutated; the output's profile reflects the result's own zero pattern, not the
// input's.
//
// Failures are reported as errors wrapping one of three sentinels
// (ErrNotDecomposable, ErrSingularPivot, ErrDegenerate); KindOf maps any error
// to its FailureKind for display. On failure no partial result is returned.
package solver
