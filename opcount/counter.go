// SPDX-License-Identifier: MIT

package opcount

import (
	"fmt"
	"strings"
)

// Kind enumerates the primitive operations we count.
type Kind int

const (
	Addition Kind = iota
	Multiplication
	Division
	SquareRoot
	Swap

	numKinds
)

// kindNames are the plain-text labels used by Tally.String.
var kindNames = [numKinds]string{
	Addition:       "additions",
	Multiplication: "multiplications",
	Division:       "divisions",
	SquareRoot:     "square roots",
	Swap:           "row swaps",
}

// String returns the plural label of k.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds returns every countable kind in display order.
func Kinds() []Kind {
	return []Kind{Addition, Multiplication, Division, SquareRoot, Swap}
}

// Tally is an immutable snapshot of operation counts.
type Tally struct {
	Additions       int64
	Multiplications int64
	Divisions       int64
	SquareRoots     int64
	Swaps           int64
}

// Get returns the count recorded for k (0 for unknown kinds).
func (t Tally) Get(k Kind) int64 {
	switch k {
	case Addition:
		return t.Additions
	case Multiplication:
		return t.Multiplications
	case Division:
		return t.Divisions
	case SquareRoot:
		return t.SquareRoots
	case Swap:
		return t.Swaps
	}

	return 0
}

// Total is the sum over all kinds.
func (t Tally) Total() int64 {
	return t.Additions + t.Multiplications + t.Divisions + t.SquareRoots + t.Swaps
}

// Plus returns the element-wise sum t + u.
func (t Tally) Plus(u Tally) Tally {
	return Tally{
		Additions:       t.Additions + u.Additions,
		Multiplications: t.Multiplications + u.Multiplications,
		Divisions:       t.Divisions + u.Divisions,
		SquareRoots:     t.SquareRoots + u.SquareRoots,
		Swaps:           t.Swaps + u.Swaps,
	}
}

// Minus returns the element-wise difference t - u. Used to split one run
// into phases from two snapshots of the same Counter.
func (t Tally) Minus(u Tally) Tally {
	return Tally{
		Additions:       t.Additions - u.Additions,
		Multiplications: t.Multiplications - u.Multiplications,
		Divisions:       t.Divisions - u.Divisions,
		SquareRoots:     t.SquareRoots - u.SquareRoots,
		Swaps:           t.Swaps - u.Swaps,
	}
}

// String renders one "label: count" line per kind.
func (t Tally) String() string {
	var b strings.Builder
	for _, k := range Kinds() {
		fmt.Fprintf(&b, "%s: %d\n", k, t.Get(k))
	}

	return b.String()
}

// Counter accumulates operation counts for one algorithm run.
// The zero value is ready to use. A Counter is not safe for concurrent use.
type Counter struct {
	t Tally
}

// New returns a zeroed Counter.
func New() *Counter { return &Counter{} }

// Reset zeroes every count.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.t = Tally{}
}

// Snapshot returns a copy of the current counts.
func (c *Counter) Snapshot() Tally {
	if c == nil {
		return Tally{}
	}

	return c.t
}

// Add records one addition or subtraction.
func (c *Counter) Add() {
	if c != nil {
		c.t.Additions++
	}
}

// MulAdd records one fused multiply-accumulate step (one multiplication and
// one addition), the unit of work of every inner product loop here.
func (c *Counter) MulAdd() {
	if c != nil {
		c.t.Multiplications++
		c.t.Additions++
	}
}

// Div records one division.
func (c *Counter) Div() {
	if c != nil {
		c.t.Divisions++
	}
}

// Sqrt records one square root.
func (c *Counter) Sqrt() {
	if c != nil {
		c.t.SquareRoots++
	}
}

// Swap records one row interchange.
func (c *Counter) Swap() {
	if c != nil {
		c.t.Swaps++
	}
}
