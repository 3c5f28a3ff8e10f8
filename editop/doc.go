// Package editop defines the two representations of an edit between two
// strings — an elementary operation list (Script) and a contiguous-span
// opcode list (OpcodeList) — and the closed algebra of conversions,
// application, inversion, normalization, and subtraction between them.
//
// A Script is the natural output of a backtrace (one symbol touched per
// op); an OpcodeList is the natural shape for rendering a diff (one record
// per maximal run). Script mirrors github.com/creachadair/mds/slice's
// Edit/EditOp design (drop/emit/copy/replace over a comparable element
// type); OpcodeList mirrors the OpCode vocabulary used by Python's difflib
// and carried into Go by github.com/pmezard/go-difflib and by
// xavier268-mydocx's diff/matcher.go (equal/delete/insert/replace spans).
//
// Every function here operates on an already-computed Script/OpcodeList and
// the two strings it relates; nothing in this package invokes the DP engine
// itself (that lives in package levenshtein). Application functions assume
// their input has already been validated by CheckElementary/CheckBlock —
// they do not re-check and will corrupt output or panic on malformed input.
package editop

import "errors"

// Sentinel errors for script/opcode validation and subtraction.
//
// Error priority (first applicable wins): ops are checked in order, each
// for TypeError, OutOfBounds, OrderError, then BlockError; CheckBlock
// reports SpanError only once every block has passed those checks.
var (
	// ErrTypeError indicates an EditOp/Opcode carries an unrecognized Kind.
	ErrTypeError = errors.New("editop: unknown operation kind")

	// ErrOutOfBounds indicates an op's spos/dpos (or sbeg/send/dbeg/dend)
	// falls outside [0, len(S)] / [0, len(D)].
	ErrOutOfBounds = errors.New("editop: position out of bounds")

	// ErrOrderError indicates successive ops are not non-decreasing in both
	// spos and dpos, or adjacent blocks do not meet exactly.
	ErrOrderError = errors.New("editop: operations out of order")

	// ErrBlockError indicates a block's span shape violates its Kind's
	// requirement (e.g. a Keep/Replace block with unequal source/dest span).
	ErrBlockError = errors.New("editop: malformed block span")

	// ErrSpanError indicates an OpcodeList does not begin at (0,0) or does
	// not end at (len(S), len(D)).
	ErrSpanError = errors.New("editop: opcode list does not tile its strings")

	// ErrMismatch indicates Subtract's sub argument is not actually an
	// ordered subsequence of ops.
	ErrMismatch = errors.New("editop: sub is not a subsequence of ops")
)
