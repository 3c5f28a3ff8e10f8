package levedit

import (
	"github.com/katalvlaran/levedit/editop"
	"github.com/katalvlaran/levedit/levenshtein"
	"github.com/katalvlaran/levedit/symbol"
)

// Distance is a convenience re-export of levenshtein.Distance for callers
// who only need the edit-distance core and don't want to import the
// subpackage by name.
func Distance[S symbol.Symbol](s, t []S, opts levenshtein.Options) (int, error) {
	return levenshtein.Distance(s, t, opts)
}

// Hamming is a convenience re-export of levenshtein.Hamming.
func Hamming[S symbol.Symbol](s, t []S) (int, error) {
	return levenshtein.Hamming(s, t)
}

// EditOps is a convenience re-export of levenshtein.EditOps.
func EditOps[S symbol.Symbol](s, t []S) (editop.Script, error) {
	return levenshtein.EditOps(s, t)
}

// Apply is a convenience re-export of editop.Apply.
func Apply[S symbol.Symbol](ops editop.Script, s, t []S) []S {
	return editop.Apply(ops, s, t)
}
