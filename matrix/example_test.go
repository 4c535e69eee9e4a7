package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvsolve/matrix"
)

// ExampleNewProfile shows the skyline layout of a banded matrix.
func ExampleNewProfile() {
	p, err := matrix.NewProfileFromRows([][]float64{
		{2, 1, 0},
		{0, 2, 1},
		{0, 0, 2},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < p.Dim(); i++ {
		first, _ := p.FirstNonZero(i)
		run, _ := p.RowValues(i)
		fmt.Println(i, first, run)
	}
	fmt.Println("stored:", p.StoredCount())

	// Output:
	// 0 0 [2 1 0]
	// 1 1 [2 1]
	// 2 2 [2]
	// stored: 6
}

// ExampleHilbert prints the 3×3 Hilbert matrix.
func ExampleHilbert() {
	h, _ := matrix.Hilbert(3)
	fmt.Print(h)

	// Output:
	// [1, 0.5, 0.3333333333333333]
	// [0.5, 0.3333333333333333, 0.25]
	// [0.3333333333333333, 0.25, 0.2]
}
