// Package lvsolve is a small laboratory for direct solvers of dense linear
// systems A·x = b, built to compare their arithmetic cost.
//
// What is inside:
//
//	opcount/   per-run counters of additions, multiplications, divisions,
//	           square roots and row swaps
//	matrix/    the Matrix interface, a flat Dense, the skyline Profile
//	           encoding, Hilbert matrices and the instrumented MatVec
//	solver/    LU(sq) square-root factorization (A = L·Lᵗ) and Gaussian
//	           elimination with partial pivoting, each returning a Tally
//	catalog/   YAML/JSON test-case catalogs with text and .npy loaders
//	report/    fixed-width text rendering of matrices, vectors and tallies
//	cmd/lvsolve command-line driver
//
// Quick example:
//
//	h, _ := matrix.Hilbert(4)
//	b, _ := matrix.MatVec(h, matrix.Ones(4), nil)
//	res, err := solver.Gauss(h, b)
//	if err != nil {
//		log.Fatal(solver.KindOf(err))
//	}
//	fmt.Print(res.Solution, "\n", res.Tally)
//
// Counting is explicit: every run owns its counter, so concurrent runs on
// different inputs never share tallies.
package lvsolve
