// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestProfileEncodingLayout checks first-non-zero columns and stored runs.
func TestProfileEncodingLayout(t *testing.T) {
	p, err := matrix.NewProfileFromRows(skylineFixture())
	require.NoError(t, err)
	require.Equal(t, 5, p.Dim())

	wantFirst := []int{0, 1, 0, 3, 5}
	wantRuns := [][]float64{
		{4, 1, 0, 0, 0},
		{5, 2, 0, 0},
		{1, 0, 6, 0, 3}, // interior zeros stay inside the run
		{7, 0},          // trailing zeros stay inside the run
		{},              // all-zero row stores nothing
	}
	for i := 0; i < 5; i++ {
		first, err := p.FirstNonZero(i)
		require.NoError(t, err)
		require.Equal(t, wantFirst[i], first, "row %d", i)

		run, err := p.RowValues(i)
		require.NoError(t, err)
		require.Equal(t, wantRuns[i], run, "row %d", i)
		require.Len(t, run, 5-first) // len(rows[i]) == n - first[i]
	}
	require.Equal(t, 5+4+5+2+0, p.StoredCount())
}

// TestProfileRoundTrip is the dense → profile → dense law.
func TestProfileRoundTrip(t *testing.T) {
	cases := map[string][][]float64{
		"skyline":  skylineFixture(),
		"full":     {{1, 2}, {3, 4}},
		"identity": {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		"zeros":    {{0, 0}, {0, 0}},
		"negative": {{0, -3}, {-1e-3, 2}},
		"1x1":      {{42}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			src := mustFrom(t, rows)
			p, err := matrix.NewProfile(src)
			require.NoError(t, err)

			back, err := p.ToDense()
			require.NoError(t, err)
			ok, err := matrix.AllClose(src, back, 0, 0)
			require.NoError(t, err)
			require.True(t, ok, "round trip changed %s:\n%v\n%v", name, src, back)
		})
	}
}

// TestProfileRoundTripRandom covers dense random data with a zeroed lower band.
func TestProfileRoundTripRandom(t *testing.T) {
	m := mustDense(t, 12, 12)
	fillDenseRand(t, m, 7)
	for i := 0; i < 12; i++ {
		for j := 0; j < i/2; j++ {
			require.NoError(t, m.Set(i, j, 0))
		}
	}
	p, err := matrix.NewProfile(m)
	require.NoError(t, err)
	back, err := p.ToDense()
	require.NoError(t, err)
	require.Equal(t, m.String(), back.String())
}

// TestProfileZeroTolerance shows that leading sub-tolerance values are flushed
// while the same magnitude inside the run is kept.
func TestProfileZeroTolerance(t *testing.T) {
	tiny := matrix.MachineEpsilon / 4
	rows := [][]float64{
		{tiny, 1, tiny},
		{0, 1, 0},
		{0, 0, 1},
	}
	p, err := matrix.NewProfileFromRows(rows)
	require.NoError(t, err)

	first, _ := p.FirstNonZero(0)
	require.Equal(t, 1, first)
	v, _ := p.At(0, 0)
	require.Equal(t, 0.0, v) // flushed
	v, _ = p.At(0, 2)
	require.Equal(t, tiny, v) // kept: inside the run

	exact, err := matrix.NewProfileFromRows(rows, matrix.WithZeroTolerance(0))
	require.NoError(t, err)
	first, _ = exact.FirstNonZero(0)
	require.Equal(t, 0, first)
	first, _ = exact.FirstNonZero(2)
	require.Equal(t, 0, first) // nothing is negligible at tol 0
	require.Equal(t, 0.0, exact.ZeroTolerance())
}

// TestProfileAtImplicitZero reads left of the run.
func TestProfileAtImplicitZero(t *testing.T) {
	p, err := matrix.NewProfileFromRows(skylineFixture())
	require.NoError(t, err)

	v, err := p.At(3, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	v, err = p.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = p.At(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = p.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestProfileSetWidens checks that writing left of the run grows the profile.
func TestProfileSetWidens(t *testing.T) {
	p, err := matrix.NewProfileFromRows(skylineFixture())
	require.NoError(t, err)
	before := p.StoredCount()

	require.NoError(t, p.Set(3, 1, 9)) // row 3 starts at col 3

	first, _ := p.FirstNonZero(3)
	require.Equal(t, 1, first)
	run, _ := p.RowValues(3)
	require.Equal(t, []float64{9, 0, 7, 0}, run) // gap filled with zeros
	require.Equal(t, before+2, p.StoredCount())

	// Writing inside the run never moves the start.
	require.NoError(t, p.Set(3, 4, 1))
	first, _ = p.FirstNonZero(3)
	require.Equal(t, 1, first)

	// Writing a zero inside the run does not shrink it.
	require.NoError(t, p.Set(3, 1, 0))
	first, _ = p.FirstNonZero(3)
	require.Equal(t, 1, first)

	// Empty row widens from n.
	require.NoError(t, p.Set(4, 2, -1))
	first, _ = p.FirstNonZero(4)
	require.Equal(t, 2, first)
	run, _ = p.RowValues(4)
	require.Equal(t, []float64{-1, 0, 0}, run)
}

func TestProfileSetErrors(t *testing.T) {
	p, err := matrix.NewProfileFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	require.ErrorIs(t, p.Set(0, 2, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, p.Set(-1, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, p.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestNewProfileValidation(t *testing.T) {
	_, err := matrix.NewProfile(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.NewProfile(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewProfile(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// Generic fallback path through a hidden Dense.
	p, err := matrix.NewProfile(hide{mustFrom(t, [][]float64{{0, 1}, {1, 0}})})
	require.NoError(t, err)
	first, _ := p.FirstNonZero(0)
	require.Equal(t, 1, first)
}

func TestProfileCloneIndependence(t *testing.T) {
	p, err := matrix.NewProfileFromRows(skylineFixture())
	require.NoError(t, err)

	cp := p.Clone()
	require.NoError(t, cp.Set(1, 0, 3)) // widen the clone only

	first, _ := p.FirstNonZero(1)
	require.Equal(t, 1, first)
	v, _ := cp.At(1, 0)
	require.Equal(t, 3.0, v)
}

func TestProfileString(t *testing.T) {
	p, err := matrix.NewProfileFromRows([][]float64{{1, 2}, {0, 3}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[0, 3]\n", p.String())
}
