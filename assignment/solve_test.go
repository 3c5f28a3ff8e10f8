package assignment_test

import (
	"testing"

	"github.com/katalvlaran/levedit/assignment"
	"github.com/katalvlaran/levedit/numat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows, cols int, vals [][]float64) *numat.Dense {
	t.Helper()
	d, err := numat.NewDense(rows, cols)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.NoError(t, d.Set(r, c, vals[r][c]))
		}
	}
	return d
}

// TestSolve_SquareObviousAssignment checks a 3x3 matrix whose optimal
// assignment is the diagonal.
func TestSolve_SquareObviousAssignment(t *testing.T) {
	d := mustDense(t, 3, 3, [][]float64{
		{1, 9, 9},
		{9, 1, 9},
		{9, 9, 1},
	})
	got, err := assignment.Solve(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)
}

// TestSolve_Rectangular checks a 4x2 matrix (more rows than columns):
// each column must get a distinct row, minimizing total cost.
func TestSolve_Rectangular(t *testing.T) {
	d := mustDense(t, 4, 2, [][]float64{
		{1, 8},
		{8, 1},
		{5, 5},
		{9, 9},
	})
	got, err := assignment.Solve(d)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])

	total := 0.0
	vals := [][]float64{{1, 8}, {8, 1}, {5, 5}, {9, 9}}
	for col, row := range got {
		total += vals[row][col]
	}
	assert.Equal(t, 2.0, total) // row0->col0 (1) + row1->col1 (1)
}

func TestSolve_ShapeMismatch(t *testing.T) {
	d := mustDense(t, 2, 3, [][]float64{{1, 1, 1}, {1, 1, 1}})
	_, err := assignment.Solve(d)
	assert.ErrorIs(t, err, assignment.ErrShapeMismatch)
}

// TestSolve_BruteForceOptimality cross-checks Solve against a brute-force
// minimum over all injective column->row assignments for small matrices,
// verifying property 10 from the testable-properties list.
func TestSolve_BruteForceOptimality(t *testing.T) {
	vals := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
		{6, 4, 1},
	}
	d := mustDense(t, 4, 3, vals)
	got, err := assignment.Solve(d)
	require.NoError(t, err)

	gotCost := 0.0
	for col, row := range got {
		gotCost += vals[row][col]
	}

	bestCost := bruteForceAssignment(vals, 4, 3)
	assert.InDelta(t, bestCost, gotCost, 1e-9)
}

// bruteForceAssignment enumerates every injective mapping of n1 columns
// into n2 rows and returns the minimum total cost.
func bruteForceAssignment(vals [][]float64, n2, n1 int) float64 {
	rows := make([]int, n2)
	for i := range rows {
		rows[i] = i
	}
	best := -1.0
	var perm func(chosen []int, remaining []int)
	perm = func(chosen []int, remaining []int) {
		if len(chosen) == n1 {
			cost := 0.0
			for col, row := range chosen {
				cost += vals[row][col]
			}
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for i, r := range remaining {
			rest := make([]int, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			perm(append(chosen, r), rest)
		}
	}
	perm(nil, rows)
	return best
}
