package median

import (
	"math"

	"github.com/katalvlaran/levedit/levenshtein"
	"github.com/katalvlaran/levedit/symbol"
)

// SetMedian returns the index of, and a copy of, whichever input string
// has the lowest weighted SOD against the rest of the collection.
// Accumulation per candidate stops early once it already exceeds the
// best SOD found so far.
func SetMedian[S symbol.Symbol](w Weighted[S]) (int, []S, error) {
	if err := w.validate(); err != nil {
		return -1, nil, err
	}
	if len(w.Strings) == 0 {
		return -1, nil, ErrEmptyInput
	}

	bestIdx := 0
	bestSOD := math.Inf(1)
	for i := range w.Strings {
		acc := 0.0
		for j := range w.Strings {
			if i == j {
				continue
			}
			d, err := levenshtein.Distance(w.Strings[i], w.Strings[j], levenshtein.DefaultOptions())
			if err != nil {
				return -1, nil, err
			}
			acc += w.Weights[j] * float64(d)
			if acc >= bestSOD {
				break
			}
		}
		if acc < bestSOD {
			bestSOD = acc
			bestIdx = i
		}
	}

	out := append([]S(nil), w.Strings[bestIdx]...)
	return bestIdx, out, nil
}
