// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/lvsolve/matrix"
)

// DefaultPivotTolerance is the magnitude below which a Gauss pivot candidate
// is unusable (strict: |p| < tol fails).
const DefaultPivotTolerance = matrix.MachineEpsilon

const (
	panicPivotTolInvalid = "solver: WithPivotTolerance: tol must be finite, non-negative"
	panicSymTolInvalid   = "solver: WithSymmetryCheck: tol must be finite, non-negative"
)

// Option configures a solver run.
type Option func(*Options)

// Options is the resolved configuration of a run.
type Options struct {
	pivotTol       float64
	checkSymmetry  bool
	symmetryTol    float64
	backSubstitute bool
	profileOpts    []matrix.Option
}

// WithPivotTolerance sets the degenerate-pivot threshold used by Gauss.
// Panics on negative or non-finite tol.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithSymmetryCheck makes Cholesky reject inputs that are not symmetric within
// tol (matrix.ErrAsymmetry). Off by default: symmetry is the caller's contract.
func WithSymmetryCheck(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymTolInvalid)
	}

	return func(o *Options) {
		o.checkSymmetry = true
		o.symmetryTol = tol
	}
}

// WithTriangularOnly stops Gauss after elimination: the result carries the
// upper-triangular system and permuted right-hand side but no solution.
func WithTriangularOnly() Option {
	return func(o *Options) { o.backSubstitute = false }
}

// WithProfileOptions forwards matrix options used when re-encoding results.
func WithProfileOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.profileOpts = append(o.profileOpts, opts...) }
}

// finiteOnly resolves the NaN/Inf policy from the forwarded matrix options;
// right-hand sides follow the same policy as matrices.
func (o Options) finiteOnly() bool {
	return matrix.NewMatrixOptions(o.profileOpts...).ValidateNaNInf()
}

func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		backSubstitute: true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
