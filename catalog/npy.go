// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

const npyExt = ".npy"

func isNpy(path string) bool {
	return strings.EqualFold(filepath.Ext(path), npyExt)
}

// ReadNpyMatrix decodes a square 2-D float array from r.
func ReadNpyMatrix(r io.Reader) (*matrix.Dense, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	if shape := nr.Header.Descr.Shape; len(shape) != 2 || shape[0] != shape[1] {
		return nil, fmt.Errorf("%w: %v, want square 2-D", ErrShape, shape)
	}

	dense := &mat.Dense{}
	if err = nr.Read(dense); err != nil {
		return nil, err
	}

	return matrix.FromGonum(dense)
}

// ReadNpyVector decodes a float array of n elements from r. Column (n,1) and
// row (1,n) shapes are accepted as well as flat (n,).
func ReadNpyVector(r io.Reader, n int) ([]float64, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, err
	}
	size := 1
	for _, d := range nr.Header.Descr.Shape {
		size *= d
	}
	if size != n || len(nr.Header.Descr.Shape) > 2 {
		return nil, fmt.Errorf("%w: %v, want %d elements", ErrShape, nr.Header.Descr.Shape, n)
	}

	var v []float64
	if err = nr.Read(&v); err != nil {
		return nil, err
	}

	return v, nil
}

// WriteNpy stores m as a 2-D float64 array.
func WriteNpy(w io.Writer, m matrix.Matrix) error {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return err
	}

	return npyio.Write(w, g)
}

// WriteNpyVector stores v as a flat float64 array.
func WriteNpyVector(w io.Writer, v []float64) error {
	return npyio.Write(w, v)
}

// ReadNpyMatrixFile opens path and decodes it with ReadNpyMatrix.
func ReadNpyMatrixFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadNpyMatrix(f)
	if err != nil {
		return nil, catalogErrorf(path, err)
	}

	return m, nil
}

// ReadNpyVectorFile opens path and decodes it with ReadNpyVector.
func ReadNpyVectorFile(path string, n int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := ReadNpyVector(f, n)
	if err != nil {
		return nil, catalogErrorf(path, err)
	}

	return v, nil
}
