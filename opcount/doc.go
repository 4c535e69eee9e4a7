// SPDX-License-Identifier: MIT

// Package opcount tallies primitive arithmetic operations performed by the
// direct solvers.
//
// A Counter is an explicit value owned by a single algorithm run. Solvers
// allocate their own Counter, and hand back an immutable Tally snapshot inside
// their result record, so repeated or interleaved runs never conflate counts.
//
// Five kinds are tracked: additions (subtractions included), multiplications,
// divisions, square roots and row swaps.
//
// All Counter methods are nil-safe: a nil *Counter silently discards counts,
// which lets kernels such as matrix.MatVec run uninstrumented.
package opcount
