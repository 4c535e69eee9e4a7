// SPDX-License-Identifier: MIT

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvsolve/matrix"
)

// ReadMatrixText parses a square matrix in the plain text layout: the
// dimension n followed by n² whitespace-separated values in row-major order.
// Extra trailing tokens are ignored.
func ReadMatrixText(r io.Reader) (*matrix.Dense, error) {
	sc := newTokenScanner(r)

	tok, ok := sc.next()
	if !ok {
		return nil, fmt.Errorf("%w: missing dimension", ErrBadSize)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadSize, tok)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		if rows[i], err = sc.floats(n); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	if err = sc.err(); err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(rows)
}

// ReadVectorText parses exactly n whitespace-separated values.
func ReadVectorText(r io.Reader, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	sc := newTokenScanner(r)
	v, err := sc.floats(n)
	if err != nil {
		return nil, err
	}

	return v, sc.err()
}

// ReadMatrixFile opens path and decodes it as text or, for a .npy extension,
// as a NumPy array.
func ReadMatrixFile(path string) (*matrix.Dense, error) {
	if isNpy(path) {
		return ReadNpyMatrixFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrixText(f)
	if err != nil {
		return nil, catalogErrorf(path, err)
	}

	return m, nil
}

// ReadVectorFile is the vector counterpart of ReadMatrixFile.
func ReadVectorFile(path string, n int) ([]float64, error) {
	if isNpy(path) {
		return ReadNpyVectorFile(path, n)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := ReadVectorText(f, n)
	if err != nil {
		return nil, catalogErrorf(path, err)
	}

	return v, nil
}

// tokenScanner yields whitespace-separated tokens.
type tokenScanner struct {
	s *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	return &tokenScanner{s: s}
}

func (t *tokenScanner) next() (string, bool) {
	if !t.s.Scan() {
		return "", false
	}

	return t.s.Text(), true
}

// floats reads exactly n numbers.
func (t *tokenScanner) floats(n int) ([]float64, error) {
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		tok, ok := t.next()
		if !ok {
			if err := t.err(); err != nil {
				return nil, err
			}

			return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, k, n)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadValue, tok)
		}
		out[k] = v
	}

	return out, nil
}

func (t *tokenScanner) err() error { return t.s.Err() }
