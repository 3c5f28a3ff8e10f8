// Package symbol gathers the distinct symbols that appear across a
// collection of strings, for either of the two supported alphabet families.
//
// A Symbol is either a narrow byte or a wide rune; every function in this
// package is generic over the Symbol constraint so the same algorithm runs
// unchanged across both families, per the host's choice of alphabet.
//
// Two strategies back the package:
//
//   - Bytes: a 256-slot dense boolean index, filled in a single linear pass.
//   - Table and Runes: a github.com/creachadair/mds/mapset.Set, for either
//     element type, which plays the role of
//     a hand-rolled chained hash table with a sentinel empty-bucket head —
//     same insert-once/iterate-once contract, no sentinel bookkeeping
//     needed because Go's map already gives us that for free.
package symbol

import "errors"

// ErrAllocation is returned when the table's backing storage could not be
// obtained. Go does not expose allocation failure to user code (the runtime
// panics instead), so this sentinel exists for API parity with callers
// expecting one and is never actually produced by this implementation;
// see DESIGN.md.
var ErrAllocation = errors.New("symbol: allocation failure")

// Symbol is the alphabet constraint shared by every package in this module.
type Symbol interface {
	~byte | ~rune
}
