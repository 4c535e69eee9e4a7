// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MachineEpsilon is the IEEE-754 double precision unit roundoff 2^-52,
// the gap between 1.0 and the next representable float64.
const MachineEpsilon = 0x1p-52

// abs returns |v| for any float type.
func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Negligible reports whether |v| < eps. It is the single zero test used by
// profile encoding and by pivot selection in the solvers.
func Negligible[T constraints.Float](v, eps T) bool {
	return abs(v) < eps
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
