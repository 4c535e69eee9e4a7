// SPDX-License-Identifier: MIT

// Package catalog loads named linear-system test cases.
//
// A catalog is a YAML (or JSON) document listing cases. Each case names exactly
// one matrix source:
//
//   - matrix: path to a text file (dimension n, then n² values) or a .npy file;
//   - rows:   an inline matrix;
//   - hilbert: the order of a generated Hilbert matrix.
//
// The right-hand side comes from vector (a text file of n values or a .npy
// file) or rhs (inline). A Hilbert case without either gets b = H·1, so the
// exact solution is the ones vector.
//
// Relative paths are resolved against the directory of the catalog file.
//
//	cases:
//	  - name: identity-4
//	    matrix: matrix4.txt
//	    vector: vector4.txt
//	  - name: hilbert-5
//	    hilbert: 5
//
// The package performs no solving; it hands a dense matrix and a vector to the
// caller.
package catalog
