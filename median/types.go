package median

import "github.com/katalvlaran/levedit/symbol"

// Weighted is a parallel collection of strings and their positive
// multiplicities, the shared input shape for every algorithm in this
// package.
type Weighted[S symbol.Symbol] struct {
	Strings [][]S
	Weights []float64
}

// validate checks the shape invariants every algorithm in this package
// relies on: matching lengths and strictly positive weights. An empty
// collection is not itself an error here — callers decide whether an
// empty collection is meaningful for their algorithm.
func (w Weighted[S]) validate() error {
	if len(w.Strings) != len(w.Weights) {
		return ErrWeightMismatch
	}
	for _, wt := range w.Weights {
		if wt <= 0 {
			return ErrNonPositiveWeight
		}
	}
	return nil
}
