// Package numat provides the real-valued rectangular matrix type shared by
// package assignment (the Munkres cost matrix) and package seqdist (the
// pairwise-distance matrix feeding SetDistance). It is adapted from
// lvlath/matrix's Dense type: row-major flat storage, bounds-checked
// At/Set, and the same epsilon/NaN-Inf numeric policy that package
// governs there — but with every graph-specific concern (adjacency,
// incidence, Floyd-Warshall, builder, statistics) stripped, because
// nothing in this module's domain is a graph.
package numat

import "errors"

// Sentinel errors, carrying the same naming and priority convention as
// lvlath/matrix/errors.go (shape -> index -> dimension -> numeric policy).
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("numat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0,rows)/[0,cols).
	ErrOutOfRange = errors.New("numat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("numat: dimension mismatch")

	// ErrNaNInf signals a NaN or infinite value where the configured numeric
	// policy requires finiteness.
	ErrNaNInf = errors.New("numat: NaN or Inf encountered")
)
