// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/opcount"
	"github.com/katalvlaran/lvsolve/solver"
	"gonum.org/v1/gonum/floats"
)

const cellFormat = "%10.4f "

// errWriter remembers the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) row(vals []float64) {
	for _, v := range vals {
		ew.printf(cellFormat, v)
	}
	ew.printf("\n")
}

// FprintMatrix writes m row by row.
func FprintMatrix(w io.Writer, m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return err
	}
	ew := &errWriter{w: w}
	for _, r := range rows {
		ew.row(r)
	}

	return ew.err
}

// FprintVector writes v on a single line.
func FprintVector(w io.Writer, v []float64) error {
	ew := &errWriter{w: w}
	ew.row(v)

	return ew.err
}

// FprintTally writes the five operation counters under a heading.
func FprintTally(w io.Writer, t opcount.Tally) error {
	ew := &errWriter{w: w}
	ew.printf("operation counts:\n")
	for _, k := range opcount.Kinds() {
		ew.printf("  %-16s %d\n", k.String()+":", t.Get(k))
	}

	return ew.err
}

// FprintFailure writes the diagnostic category of err followed by its message.
// A nil err prints nothing.
func FprintFailure(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(w, "failed (%s): %v\n", solver.KindOf(err), err)

	return werr
}

// Summary holds norms and extremes of a vector.
type Summary struct {
	Min, Max float64
	Norm2    float64
	NormInf  float64
}

// Summarize computes the Summary of v. An empty v yields NaN extremes and
// zero norms.
func Summarize(v []float64) Summary {
	if len(v) == 0 {
		return Summary{Min: math.NaN(), Max: math.NaN()}
	}

	return Summary{
		Min:     floats.Min(v),
		Max:     floats.Max(v),
		Norm2:   floats.Norm(v, 2),
		NormInf: floats.Norm(v, math.Inf(1)),
	}
}

// String formats s on one line.
func (s Summary) String() string {
	return fmt.Sprintf("min %.4g  max %.4g  ‖·‖₂ %.4g  ‖·‖∞ %.4g", s.Min, s.Max, s.Norm2, s.NormInf)
}

// FprintProblem writes a titled system: matrix A, then vector b.
func FprintProblem(w io.Writer, title string, a matrix.Matrix, b []float64) error {
	ew := &errWriter{w: w}
	ew.printf("--- %s ---\nmatrix A:\n", title)
	if ew.err != nil {
		return ew.err
	}
	if err := FprintMatrix(w, a); err != nil {
		return err
	}
	ew.printf("vector b:\n")
	ew.row(b)

	return ew.err
}
