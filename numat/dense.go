package numat

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context, matching
// lvlath/matrix's diagnostic convention.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values, used as the cost matrix
// fed to assignment.Solve and the pairwise-distance matrix built by
// seqdist.Set. Values written through Set are snapped to zero within the
// configured epsilon and, unless WithNaNAllowed is set, rejected if
// non-finite.
type Dense struct {
	r, c int
	data []float64
	opt  Options
}

// NewDense creates an r×c Dense matrix initialized to zeros under the
// default numeric policy. Use NewDenseWithOptions to override it.
//
// Stage 1 (Validate): rows and cols must be > 0.
// Stage 2 (Prepare): allocate flat backing storage.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewDenseWithOptions(rows, cols)
}

// NewDenseWithOptions creates an r×c Dense matrix applying a variadic
// Option list over DefaultOptions (package assignment uses this to
// install its tighter snap-to-zero epsilon), mirroring the
// functional-options idiom used throughout this module.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opt: o}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col), applying the epsilon snap and, unless the
// matrix's policy allows NaN/Inf, rejecting non-finite values.
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if m.opt.RejectNaN && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = m.opt.snap(v)

	return nil
}

// Fill sets every entry to v in one pass, subject to the same policy as
// Set.
func (m *Dense) Fill(v float64) error {
	if m.opt.RejectNaN && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Dense.Fill: %w", ErrNaNInf)
	}
	snapped := m.opt.snap(v)
	for i := range m.data {
		m.data[i] = snapped
	}
	return nil
}

// Clone returns a deep copy of the matrix, including its numeric policy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp, opt: m.opt}
}

// SameShape reports whether m and other have identical dimensions.
func (m *Dense) SameShape(other *Dense) bool {
	return m.r == other.r && m.c == other.c
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
