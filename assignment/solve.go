package assignment

import "github.com/katalvlaran/levedit/numat"

// Solve finds the minimum-cost assignment of each column of d to a
// distinct row. d must have at least as many rows as columns. The
// returned slice has length d.Cols(); result[j] is the row assigned to
// column j.
func Solve(d *numat.Dense) ([]int, error) {
	n2, n1 := d.Rows(), d.Cols()
	if n1 > n2 {
		return nil, ErrShapeMismatch
	}
	if n1 == 0 {
		return []int{}, nil
	}

	// Pad to an n2 x n2 square: real columns 0..n1 keep d's costs, the
	// remaining n2-n1 dummy columns cost zero against every row so they
	// never distort the real columns' optimal rows. The padded matrix is
	// its own Dense with the package's tighter zero-snap epsilon; values
	// copied from d have already been snapped under d's own policy.
	padded, err := numat.NewDenseWithOptions(n2, n2, numat.WithEpsilon(Epsilon))
	if err != nil {
		return nil, err
	}
	for col := 0; col < n1; col++ {
		for row := 0; row < n2; row++ {
			v, err := d.At(row, col)
			if err != nil {
				return nil, err
			}
			if err := padded.Set(row, col, v); err != nil {
				return nil, err
			}
		}
	}

	costs := make([][]float64, n2)
	for col := 0; col < n2; col++ {
		costs[col] = make([]float64, n2)
		for row := 0; row < n2; row++ {
			v, err := padded.At(row, col)
			if err != nil {
				return nil, err
			}
			costs[col][row] = v
		}
	}
	// costs[i][j] is indexed [column][row]; dummy columns (i >= n1) stay
	// at their zero-value default.

	targetSource := hungarianAssign(costs)

	rowForCol := make([]int, n1)
	for row, col := range targetSource {
		if col < n1 {
			rowForCol[col] = row
		}
	}

	return rowForCol, nil
}
