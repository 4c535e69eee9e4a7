// SPDX-License-Identifier: MIT

// Package matrix - Profile (skyline) storage for square matrices.
//
// Purpose:
//   - Store each row only from its first non-negligible column to the last column.
//   - Expose the same safe Matrix surface as Dense (At/Set return errors).
//   - Round-trip with Dense exactly, up to the leading-zero tolerance.
//
// Layout:
//   - first[i] is the column where row i's stored run begins (n for an all-zero row).
//   - rows[i] holds columns first[i]..n-1, so len(rows[i]) == n - first[i] always.
//   - Interior and trailing zeros inside the run are stored explicitly.
//   - Entries left of first[i] are implicit zeros.
//
// Growth:
//   - Set at a column left of first[i] widens the row: the run is extended to the
//     left with zeros and first[i] moves to the target column. A profile never
//     shrinks; there is no compaction.
//
// Complexity quicksheet:
//   - NewProfile / ToDense: O(n²); At: O(1); Set: O(1), or O(n) when widening;
//     Clone: O(stored).

package matrix

import (
	"fmt"
	"strings"
)

// profileErrorf wraps an error with a uniform Profile context and callsite indices.
func profileErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Profile.%s(%d,%d): %w", method, row, col, err)
}

// Profile is a square skyline-encoded matrix of dimension n.
type Profile struct {
	n              int         // dimension (rows == cols == n)
	first          []int       // first stored column per row, in [0, n]
	rows           [][]float64 // stored run per row, len == n - first[i]
	zeroTol        float64     // leading-zero threshold used at encoding time
	validateNaNInf bool        // numeric guard for Set
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Profile)(nil)
	_ fmt.Stringer = (*Profile)(nil)
)

// NewProfile encodes a square matrix into profile form.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square; resolve options.
//   - Stage 2: per row, scan left to right while |a[i,j]| < zeroTol; the first
//     column that fails the test becomes first[i] (n if the whole row is negligible).
//   - Stage 3: copy a[i, first[i]..n-1] verbatim, zeros included.
//
// Behavior highlights:
//   - Negligible values left of the first kept column are dropped; decoding
//     yields exact zeros there. Everything from first[i] on is kept bit-for-bit.
//   - The input is never mutated or aliased.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (when validation is enabled).
//
// Complexity:
//   - Time O(n²), Space O(stored).
func NewProfile(m Matrix, opts ...Option) (*Profile, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewProfile: %w", err)
	}
	o := gatherOptions(opts...)
	dense, err := ToRows(m)
	if err != nil {
		return nil, fmt.Errorf("NewProfile: %w", err)
	}

	n := len(dense)
	p := &Profile{
		n:              n,
		first:          make([]int, n),
		rows:           make([][]float64, n),
		zeroTol:        o.zeroTol,
		validateNaNInf: o.validateNaNInf,
	}

	var i, j, start int
	for i = 0; i < n; i++ {
		if o.validateNaNInf {
			for j = 0; j < n; j++ {
				if isNonFinite(dense[i][j]) {
					return nil, profileErrorf("NewProfile", i, j, ErrNaNInf)
				}
			}
		}
		// Skip the leading negligible run.
		start = 0
		for start < n && Negligible(dense[i][start], o.zeroTol) {
			start++
		}
		p.first[i] = start
		p.rows[i] = make([]float64, n-start)
		copy(p.rows[i], dense[i][start:])
	}

	return p, nil
}

// NewProfileFromRows is NewProfile over a row-slice literal.
func NewProfileFromRows(rows [][]float64, opts ...Option) (*Profile, error) {
	d, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewProfileFromRows: %w", err)
	}

	return NewProfile(d, opts...)
}

// ToDense decodes the profile into a freshly allocated Dense.
// Columns left of first[i] are zero-filled.
// Complexity: Time O(n²), Space O(n²).
func (p *Profile) ToDense() (*Dense, error) {
	if p == nil {
		return nil, fmt.Errorf("Profile.ToDense: %w", ErrNilMatrix)
	}
	d, err := newDenseWithPolicy(p.n, p.n, p.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Profile.ToDense: %w", err)
	}
	for i := 0; i < p.n; i++ {
		copy(d.data[i*p.n+p.first[i]:(i+1)*p.n], p.rows[i])
	}

	return d, nil
}

// Rows returns n.
func (p *Profile) Rows() int { return p.n }

// Cols returns n.
func (p *Profile) Cols() int { return p.n }

// Dim returns the common dimension n.
func (p *Profile) Dim() int { return p.n }

// ZeroTolerance returns the threshold the profile was encoded with.
func (p *Profile) ZeroTolerance() float64 { return p.zeroTol }

func (p *Profile) checkIndex(row, col int) error {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return ErrOutOfRange
	}

	return nil
}

// At returns a[row,col]: 0 left of the stored run, the stored value otherwise.
// Complexity: O(1).
func (p *Profile) At(row, col int) (float64, error) {
	if err := p.checkIndex(row, col); err != nil {
		return 0, profileErrorf(ctxAt, row, col, err)
	}
	if col < p.first[row] {
		return 0, nil
	}

	return p.rows[row][col-p.first[row]], nil
}

// Set assigns a[row,col] = v, widening the row when col lies left of its run.
//
// Implementation:
//   - Stage 1: bounds check and numeric policy.
//   - Stage 2: if col < first[row], allocate a run of n-col values, place the
//     old run at offset first[row]-col and move first[row] to col.
//   - Stage 3: write v into the run.
//
// Behavior highlights:
//   - Widening happens for any value, zero included; the profile never shrinks.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf.
//
// Complexity:
//   - O(1) inside the run; O(n) when widening.
func (p *Profile) Set(row, col int, v float64) error {
	if err := p.checkIndex(row, col); err != nil {
		return profileErrorf(ctxSet, row, col, err)
	}
	if p.validateNaNInf && isNonFinite(v) {
		return profileErrorf(ctxSet, row, col, ErrNaNInf)
	}
	if col < p.first[row] {
		p.widen(row, col)
	}
	p.rows[row][col-p.first[row]] = v

	return nil
}

// widen extends row's stored run leftwards so that it starts at col.
// Caller guarantees 0 <= col < first[row].
func (p *Profile) widen(row, col int) {
	grown := make([]float64, p.n-col) // zero-filled gap on the left
	copy(grown[p.first[row]-col:], p.rows[row])
	p.rows[row] = grown
	p.first[row] = col
}

// FirstNonZero returns the first stored column of row i (n for an empty row).
func (p *Profile) FirstNonZero(i int) (int, error) {
	if i < 0 || i >= p.n {
		return 0, profileErrorf("FirstNonZero", i, 0, ErrOutOfRange)
	}

	return p.first[i], nil
}

// RowValues returns a copy of row i's stored run (columns first[i]..n-1).
func (p *Profile) RowValues(i int) ([]float64, error) {
	if i < 0 || i >= p.n {
		return nil, profileErrorf("RowValues", i, 0, ErrOutOfRange)
	}
	out := make([]float64, len(p.rows[i]))
	copy(out, p.rows[i])

	return out, nil
}

// StoredCount is the number of explicitly stored values, sum of n - first[i].
func (p *Profile) StoredCount() int {
	total := 0
	for i := 0; i < p.n; i++ {
		total += len(p.rows[i])
	}

	return total
}

// Clone returns an independent deep copy with the same policy.
func (p *Profile) Clone() Matrix {
	cp := &Profile{
		n:              p.n,
		first:          make([]int, p.n),
		rows:           make([][]float64, p.n),
		zeroTol:        p.zeroTol,
		validateNaNInf: p.validateNaNInf,
	}
	copy(cp.first, p.first)
	for i := 0; i < p.n; i++ {
		cp.rows[i] = make([]float64, len(p.rows[i]))
		copy(cp.rows[i], p.rows[i])
	}

	return cp
}

// String renders the decoded matrix in the same shape as Dense.String.
func (p *Profile) String() string {
	var b strings.Builder
	var i, j int
	var v float64
	for i = 0; i < p.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < p.n; j++ {
			v = 0
			if j >= p.first[i] {
				v = p.rows[i][j-p.first[i]]
			}
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < p.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
