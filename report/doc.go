// SPDX-License-Identifier: MIT

// Package report renders matrices, vectors, operation tallies and solver
// failures as fixed-width plain text.
//
// Every number is printed with a width of 10 and 4 decimals followed by a
// single space, one matrix row per line.
package report
