// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Used by loaders that decode into *mat.Dense (e.g. .npy files).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	o := gatherOptions(opts...)
	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf("FromGonum", i, j, ErrNaNInf)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	flat := make([]float64, 0, r*c)
	for i := range rows {
		flat = append(flat, rows[i]...)
	}

	return mat.NewDense(r, c, flat), nil
}
