package seqdist

import (
	"github.com/katalvlaran/levedit/assignment"
	"github.com/katalvlaran/levedit/numat"
	"github.com/katalvlaran/levedit/symbol"
)

// Set computes the order-independent counterpart of Seq: it matches each
// string of the smaller sequence to a distinct string of the larger one
// minimizing total fractional replacement cost, via the rectangular
// assignment solver, then charges 1 per unmatched string on the larger
// side. a and b are swapped internally so the assignment solver always
// sees at least as many rows as columns; the result is unaffected by
// which side is the caller's "first" sequence.
func Set[S symbol.Symbol](a, b [][]S) (float64, error) {
	n2, n1 := len(a), len(b)
	small, large := b, a
	if n1 > n2 {
		n1, n2 = n2, n1
		small, large = a, b
	}

	if n1 == 0 {
		return float64(n2), nil
	}

	d, err := numat.NewDense(n2, n1)
	if err != nil {
		return 0, err
	}
	for col := 0; col < n1; col++ {
		for row := 0; row < n2; row++ {
			cost, err := fracDistance(small[col], large[row])
			if err != nil {
				return 0, err
			}
			if err := d.Set(row, col, cost); err != nil {
				return 0, err
			}
		}
	}

	rowForCol, err := assignment.Solve(d)
	if err != nil {
		return 0, err
	}

	total := float64(n2 - n1)
	for col, row := range rowForCol {
		cost, err := d.At(row, col)
		if err != nil {
			return 0, err
		}
		total += 2 * cost
	}
	return total, nil
}
