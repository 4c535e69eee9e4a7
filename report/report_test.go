// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/opcount"
	"github.com/katalvlaran/lvsolve/report"
	"github.com/katalvlaran/lvsolve/solver"
	"github.com/stretchr/testify/require"
)

func TestFprintMatrix(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{
		{1, -0.5},
		{1.0 / 3, 12345.678},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.FprintMatrix(&buf, m))
	require.Equal(t,
		"    1.0000    -0.5000 \n"+
			"    0.3333 12345.6780 \n",
		buf.String())
}

func TestFprintMatrixProfile(t *testing.T) {
	p, err := matrix.NewProfileFromRows([][]float64{
		{0, 2},
		{3, 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.FprintMatrix(&buf, p))
	require.Equal(t, "    0.0000     2.0000 \n    3.0000     0.0000 \n", buf.String())

	require.ErrorIs(t, report.FprintMatrix(&buf, nil), matrix.ErrNilMatrix)
}

func TestFprintVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintVector(&buf, []float64{1, 2}))
	require.Equal(t, "    1.0000     2.0000 \n", buf.String())

	buf.Reset()
	require.NoError(t, report.FprintVector(&buf, nil))
	require.Equal(t, "\n", buf.String())
}

func TestFprintTally(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintTally(&buf, opcount.Tally{Additions: 3, Swaps: 1}))
	require.Equal(t, "operation counts:\n"+
		"  additions:       3\n"+
		"  multiplications: 0\n"+
		"  divisions:       0\n"+
		"  square roots:    0\n"+
		"  row swaps:       1\n", buf.String())
}

func TestFprintFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.FprintFailure(&buf, nil))
	require.Empty(t, buf.String())

	err := fmt.Errorf("Gauss: column 1: %w", solver.ErrDegenerate)
	require.NoError(t, report.FprintFailure(&buf, err))
	require.Equal(t, "failed (degenerate matrix): Gauss: column 1: solver: degenerate matrix\n", buf.String())
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWriteErrorsPropagate(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	require.ErrorIs(t, report.FprintMatrix(failingWriter{}, id), errSink)
	require.ErrorIs(t, report.FprintVector(failingWriter{}, []float64{1}), errSink)
	require.ErrorIs(t, report.FprintTally(failingWriter{}, opcount.Tally{}), errSink)
	require.ErrorIs(t, report.FprintProblem(failingWriter{}, "x", id, []float64{1, 1}), errSink)
}

func TestSummarize(t *testing.T) {
	s := report.Summarize([]float64{3, -4})
	require.Equal(t, -4.0, s.Min)
	require.Equal(t, 3.0, s.Max)
	require.InDelta(t, 5.0, s.Norm2, 1e-15)
	require.Equal(t, 4.0, s.NormInf)

	empty := report.Summarize(nil)
	require.True(t, math.IsNaN(empty.Min))
	require.Zero(t, empty.Norm2)
}

func TestFprintProblem(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.FprintProblem(&buf, "identity-2", id, []float64{1, 2}))
	require.Equal(t, "--- identity-2 ---\nmatrix A:\n"+
		"    1.0000     0.0000 \n"+
		"    0.0000     1.0000 \n"+
		"vector b:\n"+
		"    1.0000     2.0000 \n", buf.String())
}
