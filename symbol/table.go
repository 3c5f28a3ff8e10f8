package symbol

import "github.com/creachadair/mds/mapset"

// Table returns the distinct symbols across all of strs, in first-seen
// order. It is the alphabet-generic entry point used internally by
// median, where the caller already committed to one Symbol
// type and just needs a deduplicated alphabet regardless of which family
// that type belongs to.
func Table[S Symbol](strs ...[]S) []S {
	seen := mapset.NewSize[S](32)
	out := make([]S, 0, 32)
	for _, s := range strs {
		for _, c := range s {
			if !seen.Has(c) {
				seen.Add(c)
				out = append(out, c)
			}
		}
	}
	return out
}

// Bytes returns the distinct byte symbols across all of strs, using a
// 256-slot dense index — the narrow-alphabet strategy.
func Bytes(strs ...[]byte) []byte {
	var present [256]bool
	out := make([]byte, 0, 64)
	for _, s := range strs {
		for _, c := range s {
			if !present[c] {
				present[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Runes returns the distinct rune symbols across all of strs, using a
// general-purpose set — the wide-alphabet strategy. A hand-rolled chained
// hash table with sentinel empty-bucket heads is not reproduced here;
// mapset.Set gives the same insert-once/enumerate contract with none of
// that bookkeeping.
func Runes(strs ...[]rune) []rune {
	return Table(strs...)
}
