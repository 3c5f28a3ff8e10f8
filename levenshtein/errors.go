package levenshtein

import "errors"

// Sentinel errors, in priority order: option validation first, then
// input-shape mismatches, then the internal consistency assertion
// EditOps relies on while backtracking.
var (
	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("levenshtein: invalid options combination")

	// ErrLengthMismatch indicates Hamming was called on strings of
	// different lengths.
	ErrLengthMismatch = errors.New("levenshtein: strings have different lengths")

	// ErrInconsistentMatrix indicates the backtrace in EditOps reached a
	// cell with no consistent predecessor move — a contract violation in
	// the cost matrix that should not happen once inputs satisfy the
	// documented preconditions.
	ErrInconsistentMatrix = errors.New("levenshtein: cost matrix backtrace is inconsistent")
)
