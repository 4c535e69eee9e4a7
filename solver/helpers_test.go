// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/stretchr/testify/require"
)

// spd3 is the classic symmetric positive-definite example with integer factor
// L = [[2,0,0],[6,1,0],[-8,5,3]].
func spd3() [][]float64 {
	return [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	}
}

func mustProfile(tb testing.TB, rows [][]float64) *matrix.Profile {
	tb.Helper()
	p, err := matrix.NewProfileFromRows(rows)
	require.NoError(tb, err)

	return p
}

func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return d
}

// randomSPD returns B·Bᵗ + n·I for a seeded random B.
func randomSPD(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		for j := range b[i] {
			b[i][j] = rng.Float64()*2 - 1
		}
	}
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			for k := 0; k < n; k++ {
				a[i][j] += b[i][k] * b[j][k]
			}
		}
		a[i][i] += float64(n)
	}

	return a
}

// randomGeneral returns a seeded random n×n matrix with entries in [-1,1).
func randomGeneral(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = rng.Float64()*2 - 1
		}
	}

	return a
}

// choose returns the binomial coefficient C(n,k) for small arguments.
func choose(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}

	return r
}
