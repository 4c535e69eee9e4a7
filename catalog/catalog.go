// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvsolve/matrix"
	"gopkg.in/yaml.v3"
)

// Case is one entry of a catalog as written in the file.
type Case struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Matrix      string      `yaml:"matrix,omitempty"`
	Vector      string      `yaml:"vector,omitempty"`
	Rows        [][]float64 `yaml:"rows,omitempty"`
	RHS         []float64   `yaml:"rhs,omitempty"`
	Hilbert     int         `yaml:"hilbert,omitempty"`
}

// Catalog is an ordered list of cases plus the directory their relative
// paths are resolved against.
type Catalog struct {
	Cases []Case `yaml:"cases"`

	dir string
}

// Problem is a loaded case: a dense system matrix and its right-hand side.
type Problem struct {
	Name        string
	Description string
	A           *matrix.Dense
	B           []float64
}

// Dim returns the order of the system.
func (p *Problem) Dim() int { return p.A.Rows() }

// Parse decodes a catalog from r and validates it. Relative paths will be
// resolved against dir.
func Parse(r io.Reader, dir string) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	c.dir = dir
	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(bytes.NewReader(data), filepath.Dir(path))
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		where := cs.Name
		if where == "" {
			where = fmt.Sprintf("case #%d", i)
		}
		if seen[cs.Name] {
			return catalogErrorf(where, ErrDuplicateName)
		}
		seen[cs.Name] = true

		sources := 0
		if cs.Matrix != "" {
			sources++
		}
		if cs.Rows != nil {
			sources++
		}
		if cs.Hilbert != 0 {
			sources++
		}
		if sources != 1 || cs.Hilbert < 0 {
			return catalogErrorf(where, ErrNoSource)
		}
		if cs.Hilbert == 0 && cs.Vector == "" && cs.RHS == nil {
			return catalogErrorf(where, ErrNoVector)
		}
	}

	return nil
}

// Names lists case names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Cases))
	for i := range c.Cases {
		out[i] = c.Cases[i].Name
	}

	return out
}

// Lookup returns the case with the given name.
func (c *Catalog) Lookup(name string) (Case, error) {
	for _, cs := range c.Cases {
		if cs.Name == name {
			return cs, nil
		}
	}

	return Case{}, fmt.Errorf("%w: %q", ErrUnknownCase, name)
}

// Load materializes the named case.
func (c *Catalog) Load(name string) (*Problem, error) {
	cs, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	return cs.Load(c.dir)
}

// LoadAll materializes every case in order, stopping at the first failure.
func (c *Catalog) LoadAll() ([]*Problem, error) {
	out := make([]*Problem, 0, len(c.Cases))
	for _, cs := range c.Cases {
		p, err := cs.Load(c.dir)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Load builds the Problem described by cs, resolving relative paths against dir.
//
// Errors:
//   - ErrNoSource, ErrNoVector for an incomplete case;
//   - file and format errors from the text and .npy readers;
//   - matrix.ErrNonSquare for a non-square inline matrix;
//   - matrix.ErrDimensionMismatch when the vector length differs from the order.
func (cs Case) Load(dir string) (*Problem, error) {
	a, err := cs.loadMatrix(dir)
	if err != nil {
		return nil, catalogErrorf(cs.Name, err)
	}
	b, err := cs.loadVector(dir, a)
	if err != nil {
		return nil, catalogErrorf(cs.Name, err)
	}

	return &Problem{Name: cs.Name, Description: cs.Description, A: a, B: b}, nil
}

func (cs Case) loadMatrix(dir string) (*matrix.Dense, error) {
	var (
		a   *matrix.Dense
		err error
	)
	switch {
	case cs.Matrix != "":
		a, err = ReadMatrixFile(resolve(dir, cs.Matrix))
	case cs.Rows != nil:
		a, err = matrix.NewDenseFrom(cs.Rows)
	case cs.Hilbert > 0:
		a, err = matrix.Hilbert(cs.Hilbert)
	default:
		return nil, ErrNoSource
	}
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, err
	}

	return a, nil
}

func (cs Case) loadVector(dir string, a *matrix.Dense) ([]float64, error) {
	n := a.Rows()
	switch {
	case cs.Vector != "":
		return ReadVectorFile(resolve(dir, cs.Vector), n)
	case cs.RHS != nil:
		if err := matrix.ValidateVecLen(cs.RHS, n); err != nil {
			return nil, err
		}
		b := make([]float64, n)
		copy(b, cs.RHS)

		return b, nil
	case cs.Hilbert > 0:
		// b = H·1 so that x = 1 exactly.
		return matrix.MatVec(a, matrix.Ones(n), nil)
	default:
		return nil, ErrNoVector
	}
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}

	return filepath.Join(dir, p)
}
