// SPDX-License-Identifier: MIT

package opcount_test

import (
	"testing"

	"github.com/katalvlaran/lvsolve/opcount"
	"github.com/stretchr/testify/require"
)

// TestCounterRecordsEveryKind checks that each increment lands in its own slot.
func TestCounterRecordsEveryKind(t *testing.T) {
	c := opcount.New()
	c.Add()
	c.MulAdd()
	c.MulAdd()
	c.Div()
	c.Div()
	c.Sqrt()
	c.Swap()

	got := c.Snapshot()
	require.Equal(t, opcount.Tally{
		Additions:       3,
		Multiplications: 2,
		Divisions:       2,
		SquareRoots:     1,
		Swaps:           1,
	}, got)
	require.Equal(t, int64(9), got.Total())
}

// TestCounterResetAndSnapshotIndependence ensures snapshots are copies.
func TestCounterResetAndSnapshotIndependence(t *testing.T) {
	c := opcount.New()
	c.MulAdd()
	before := c.Snapshot()

	c.Reset()
	require.Equal(t, opcount.Tally{}, c.Snapshot())
	require.Equal(t, int64(1), before.Additions) // snapshot unaffected by Reset
}

// TestNilCounterIsNoop verifies nil receivers discard counts without panicking.
func TestNilCounterIsNoop(t *testing.T) {
	var c *opcount.Counter
	require.NotPanics(t, func() {
		c.Add()
		c.MulAdd()
		c.Div()
		c.Sqrt()
		c.Swap()
		c.Reset()
	})
	require.Equal(t, opcount.Tally{}, c.Snapshot())
}

func TestTallyArithmetic(t *testing.T) {
	a := opcount.Tally{Additions: 5, Multiplications: 4, Divisions: 3, SquareRoots: 2, Swaps: 1}
	b := opcount.Tally{Additions: 1, Multiplications: 1, Divisions: 1, SquareRoots: 1, Swaps: 1}

	require.Equal(t, opcount.Tally{Additions: 6, Multiplications: 5, Divisions: 4, SquareRoots: 3, Swaps: 2}, a.Plus(b))
	require.Equal(t, opcount.Tally{Additions: 4, Multiplications: 3, Divisions: 2, SquareRoots: 1}, a.Minus(b))
	require.Equal(t, int64(4), a.Get(opcount.Multiplication))
	require.Equal(t, int64(0), a.Get(opcount.Kind(42)))
}

func TestTallyString(t *testing.T) {
	tally := opcount.Tally{Additions: 3, Multiplications: 3, Divisions: 1}
	want := "additions: 3\n" +
		"multiplications: 3\n" +
		"divisions: 1\n" +
		"square roots: 0\n" +
		"row swaps: 0\n"
	require.Equal(t, want, tally.String())
	require.Equal(t, "Kind(9)", opcount.Kind(9).String())
}
