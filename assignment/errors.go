package assignment

import "errors"

// Epsilon is the snap-to-zero tolerance of the padded cost matrix Solve
// builds, tightened from numat.DefaultEpsilon to the source design's
// ε = 1e-14. The solver itself compares slacks and potentials exactly.
const Epsilon = 1e-14

// Sentinel errors.
var (
	// ErrShapeMismatch indicates the input matrix has more columns than
	// rows (n1 > n2), violating the solver's rectangular-shape contract.
	ErrShapeMismatch = errors.New("assignment: matrix must have at least as many rows as columns")
)
