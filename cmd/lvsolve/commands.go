// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvsolve/catalog"
	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/opcount"
	"github.com/katalvlaran/lvsolve/report"
	"github.com/katalvlaran/lvsolve/solver"
)

const rule = "=============================================="

var (
	errNoCase     = errors.New("-case is required for this mode")
	errBadMethod  = errors.New("method must be 'cholesky', 'gauss' or 'both'")
	errRunsFailed = errors.New("one or more runs failed")
)

type sizeError struct{ field string }

func (e *sizeError) Error() string { return fmt.Sprintf("invalid Hilbert order %q", e.field) }

func listCases(w io.Writer, c *catalog.Catalog) error {
	for i, cs := range c.Cases {
		if _, err := fmt.Fprintf(w, "%2d. %-20s %s\n", i+1, cs.Name, cs.Description); err != nil {
			return err
		}
	}

	return nil
}

func showProblem(w io.Writer, p *catalog.Problem) error {
	title := p.Name
	if p.Description != "" {
		title += ": " + p.Description
	}

	return report.FprintProblem(w, title, p.A, p.B)
}

// runProblem applies the configured method(s) to p. A solver failure is
// reported and does not stop the other method; it is returned as errRunsFailed
// only if every requested method failed.
func runProblem(w io.Writer, p *catalog.Problem, cfg config) error {
	var doChol, doGauss bool
	switch cfg.method {
	case "cholesky":
		doChol = true
	case "gauss":
		doGauss = true
	case "both":
		doChol, doGauss = true, true
	default:
		return fmt.Errorf("%w: %q", errBadMethod, cfg.method)
	}

	profile, err := matrix.NewProfile(p.A)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "%s\n%s (n=%d, %d stored of %d)\n", rule, p.Name, p.Dim(),
		profile.StoredCount(), p.Dim()*p.Dim()); err != nil {
		return err
	}

	attempted, failed := 0, 0
	if doChol {
		attempted++
		x, err := runCholesky(w, profile, p.B, cfg.solverOptions())
		if err != nil {
			return err
		}
		if x == nil {
			failed++
		} else if err = saveSolution(cfg.npyOut, p.Name+"-cholesky", x); err != nil {
			return err
		}
	}
	if doGauss {
		attempted++
		x, err := runGauss(w, profile, p.B, cfg.solverOptions())
		if err != nil {
			return err
		}
		if x == nil {
			failed++
		} else if err = saveSolution(cfg.npyOut, p.Name+"-gauss", x); err != nil {
			return err
		}
	}
	if attempted > 0 && failed == attempted {
		return fmt.Errorf("%s: %w", p.Name, errRunsFailed)
	}

	return nil
}

// runCholesky prints the combined factor, the solution and F = A·x checked
// against b. It returns a nil solution, and a nil error, when the
// factorization fails; err is reserved for output failures.
func runCholesky(w io.Writer, a *matrix.Profile, b []float64, opts []solver.Option) ([]float64, error) {
	fmt.Fprintln(w, "\n--- LU(sq) factorization ---")
	res, err := solver.Cholesky(a, opts...)
	if err != nil {
		return nil, report.FprintFailure(w, err)
	}
	fmt.Fprintln(w, "combined factor (L below, Lᵗ above):")
	if err = report.FprintMatrix(w, res.Factor); err != nil {
		return nil, err
	}
	if err = report.FprintTally(w, res.Tally); err != nil {
		return nil, err
	}
	recon, err := res.ReconstructionError(a)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "max |L·Lᵗ − A| = %.3e\n", recon)

	x, solveTally, err := res.Solve(b)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "solution x:")
	if err = report.FprintVector(w, x); err != nil {
		return nil, err
	}

	c := opcount.New()
	f, err := matrix.MatVec(a, x, c)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, "F = A·x:")
	if err = report.FprintVector(w, f); err != nil {
		return nil, err
	}
	if err = fprintCheck(w, a, x, b, solveTally.Plus(c.Snapshot())); err != nil {
		return nil, err
	}

	return x, nil
}

// runGauss prints the eliminated system, the solution and its tallies.
func runGauss(w io.Writer, a *matrix.Profile, b []float64, opts []solver.Option) ([]float64, error) {
	fmt.Fprintln(w, "\n--- Gaussian elimination, partial pivoting ---")
	res, err := solver.Gauss(a, b, opts...)
	if err != nil {
		return nil, report.FprintFailure(w, err)
	}
	fmt.Fprintln(w, "upper-triangular matrix:")
	if err = report.FprintMatrix(w, res.Upper); err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "row permutation: %v\n", res.Permutation)
	fmt.Fprintln(w, "solution x:")
	if err = report.FprintVector(w, res.Solution); err != nil {
		return nil, err
	}
	if err = report.FprintTally(w, res.Tally); err != nil {
		return nil, err
	}
	if err = fprintCheck(w, a, res.Solution, b, opcount.Tally{}); err != nil {
		return nil, err
	}

	return res.Solution, nil
}

// fprintCheck writes the residual and, when non-zero, the extra operations
// spent on verification.
func fprintCheck(w io.Writer, a matrix.Matrix, x, b []float64, extra opcount.Tally) error {
	r, err := solver.Residual(a, x, b)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "residual ‖A·x − b‖∞ = %.3e\nx: %s\n", r, report.Summarize(x)); err != nil {
		return err
	}
	if extra == (opcount.Tally{}) {
		return nil
	}
	fmt.Fprintln(w, "solve and check:")

	return report.FprintTally(w, extra)
}

// hilbertSweep factors H_n for every order, with b = H·1, and prints a table
// of operation totals and errors against the exact ones solution.
func hilbertSweep(w io.Writer, sizes []int, opts []solver.Option) error {
	if _, err := fmt.Fprintf(w, "%4s  %-10s %10s %10s %12s %12s\n",
		"n", "method", "mul", "div", "residual", "error"); err != nil {
		return err
	}
	for _, n := range sizes {
		h, err := matrix.Hilbert(n)
		if err != nil {
			return err
		}
		ones := matrix.Ones(n)
		b, err := matrix.MatVec(h, ones, nil)
		if err != nil {
			return err
		}

		var x []float64
		var t opcount.Tally
		chol, err := solver.Cholesky(h, opts...)
		if err == nil {
			var st opcount.Tally
			x, st, err = chol.Solve(b)
			t = chol.Tally.Plus(st)
		}
		if err = fprintSweepRow(w, n, "cholesky", h, x, b, t, err); err != nil {
			return err
		}

		x, t = nil, opcount.Tally{}
		g, err := solver.Gauss(h, b, opts...)
		if err == nil {
			x, t = g.Solution, g.Tally
		}
		if err = fprintSweepRow(w, n, "gauss", h, x, b, t, err); err != nil {
			return err
		}
	}

	return nil
}

func fprintSweepRow(w io.Writer, n int, method string, h matrix.Matrix, x, b []float64, t opcount.Tally, runErr error) error {
	if runErr != nil {
		_, err := fmt.Fprintf(w, "%4d  %-10s %s\n", n, method, solver.KindOf(runErr))
		return err
	}
	r, err := solver.Residual(h, x, b)
	if err != nil {
		return err
	}
	fe, err := solver.ForwardError(x, matrix.Ones(n))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%4d  %-10s %10d %10d %12.3e %12.3e\n",
		n, method, t.Multiplications, t.Divisions, r, fe)

	return err
}

// saveSolution writes x to dir/name.npy; an empty dir disables it.
func saveSolution(dir, name string, x []float64) error {
	if dir == "" {
		return nil
	}
	f, err := os.Create(filepath.Join(dir, name+".npy"))
	if err != nil {
		return err
	}
	if err = catalog.WriteNpyVector(f, x); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
