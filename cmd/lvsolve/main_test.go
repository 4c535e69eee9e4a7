// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvsolve/catalog"
	"github.com/katalvlaran/lvsolve/solver"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadFile(filepath.Join("..", "..", "catalog", "testdata", "catalog.yaml"))
	require.NoError(t, err)

	return c
}

func TestParseSizes(t *testing.T) {
	got, err := parseSizes(" 2, 4,,8 ")
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 8}, got)

	for _, bad := range []string{"", ",", "2,x", "0", "-3"} {
		_, err = parseSizes(bad)
		var se *sizeError
		require.ErrorAs(t, err, &se, "%q", bad)
	}
}

func TestListCases(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listCases(&buf, testCatalog(t)))
	require.Contains(t, buf.String(), " 1. minimal-1")
	require.Contains(t, buf.String(), " 8. classic-spd")
}

func TestRunProblemBoth(t *testing.T) {
	p, err := testCatalog(t).Load("classic-spd")
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg := config{method: "both", pivotTol: solver.DefaultPivotTolerance}
	require.NoError(t, runProblem(&buf, p, cfg))

	out := buf.String()
	require.Contains(t, out, "LU(sq) factorization")
	require.Contains(t, out, "Gaussian elimination")
	require.Contains(t, out, "square roots:    3")
	require.NotContains(t, out, "failed")
}

// TestRunProblemPartialFailure: the non-symmetric case fails LU(sq) but Gauss
// still solves it, so the run as a whole succeeds.
func TestRunProblemPartialFailure(t *testing.T) {
	p, err := testCatalog(t).Load("nonsymmetric-4")
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg := config{method: "both", pivotTol: solver.DefaultPivotTolerance, symmetryCheck: true}
	require.NoError(t, runProblem(&buf, p, cfg))
	require.Contains(t, buf.String(), "failed (invalid input)")
}

// TestDefaultConfigRejectsAsymmetricLUsq: with the CLI defaults a
// non-symmetric case is refused by LU(sq) instead of being factored from its
// upper triangle, and Gauss still solves it.
func TestDefaultConfigRejectsAsymmetricLUsq(t *testing.T) {
	cfg := defaultConfig()
	require.True(t, cfg.symmetryCheck)
	require.Equal(t, "both", cfg.method)

	p, err := testCatalog(t).Load("nonsymmetric-4")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runProblem(&buf, p, cfg))
	out := buf.String()
	require.Contains(t, out, "failed (invalid input)")
	require.Contains(t, out, "not symmetric")
	require.NotContains(t, out, "combined factor")
	require.Contains(t, out, "upper-triangular matrix:")
}

// TestDefaultConfigAcceptsSymmetric: the check passes exactly symmetric input.
func TestDefaultConfigAcceptsSymmetric(t *testing.T) {
	p, err := testCatalog(t).Load("zeros-3")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runProblem(&buf, p, defaultConfig()))
	require.Contains(t, buf.String(), "combined factor")
	require.NotContains(t, buf.String(), "failed")
}

func TestRunProblemAllFailed(t *testing.T) {
	p, err := testCatalog(t).Load("singular-3")
	require.NoError(t, err)

	var buf bytes.Buffer
	cfg := config{method: "gauss", pivotTol: 1e-12}
	err = runProblem(&buf, p, cfg)
	require.ErrorIs(t, err, errRunsFailed)
	require.Contains(t, buf.String(), "failed (degenerate matrix)")
}

func TestRunProblemBadMethod(t *testing.T) {
	p, err := testCatalog(t).Load("minimal-1")
	require.NoError(t, err)

	err = runProblem(&bytes.Buffer{}, p, config{method: "qr"})
	require.ErrorIs(t, err, errBadMethod)
}

func TestRunProblemSavesNpy(t *testing.T) {
	p, err := testCatalog(t).Load("zeros-3")
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := config{method: "gauss", pivotTol: solver.DefaultPivotTolerance, npyOut: dir}
	require.NoError(t, runProblem(&bytes.Buffer{}, p, cfg))

	x, err := catalog.ReadNpyVectorFile(filepath.Join(dir, "zeros-3-gauss.npy"), 3)
	require.NoError(t, err)
	for _, v := range x {
		require.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestShowProblem(t *testing.T) {
	p, err := testCatalog(t).Load("minimal-1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, showProblem(&buf, p))
	require.Equal(t, "--- minimal-1: smallest possible system (1x1) ---\nmatrix A:\n"+
		"    4.0000 \nvector b:\n    8.0000 \n", buf.String())
}

func TestHilbertSweep(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, hilbertSweep(&buf, []int{2, 3}, nil))

	out := buf.String()
	require.Contains(t, out, "method")
	require.Contains(t, out, "   2  cholesky")
	require.Contains(t, out, "   3  gauss")
}
