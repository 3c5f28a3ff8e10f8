package median

import (
	"github.com/katalvlaran/levedit/levenshtein"
	"github.com/katalvlaran/levedit/symbol"
)

// Improve takes a candidate median and tries Replace, Insert, and Delete
// at every position, committing whichever single perturbation reduces
// the weighted SOD the most at that position, and returns a copy of s
// unchanged if none does. It never returns a string with a higher SOD
// than s.
//
// Each candidate's SOD is evaluated directly via levenshtein.Distance
// rather than through the source design's cached per-string DP row and
// finish-distance shortcut: the asymptotic win of that cache does not
// change the result, and recomputing directly removes an invariant
// (cache validity across Delete) this implementation has no way to
// verify without running it.
func Improve[S symbol.Symbol](s []S, w Weighted[S], opts Options) ([]S, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	alphabet := symbol.Table(w.Strings...)
	cur := append([]S(nil), s...)
	curSOD := sod(cur, w)

	origL := len(s)
	maxSteps := 2*(origL+1) + 1
	p := 0
	for step := 0; step < maxSteps && p <= len(cur); step++ {
		best := cur
		bestSOD := curSOD
		advance := true

		if p < len(cur) {
			for _, sigma := range alphabet {
				if sigma == cur[p] {
					continue
				}
				cand := append([]S(nil), cur...)
				cand[p] = sigma
				if d := sod(cand, w); d < bestSOD {
					best, bestSOD = cand, d
				}
			}

			del := make([]S, 0, len(cur)-1)
			del = append(del, cur[:p]...)
			del = append(del, cur[p+1:]...)
			if d := sod(del, w); d < bestSOD {
				best, bestSOD, advance = del, d, false
			}
		}

		for _, sigma := range alphabet {
			ins := make([]S, 0, len(cur)+1)
			ins = append(ins, cur[:p]...)
			ins = append(ins, sigma)
			ins = append(ins, cur[p:]...)
			if d := sod(ins, w); d < bestSOD {
				best, bestSOD = ins, d
			}
		}

		cur, curSOD = best, bestSOD
		if advance {
			p++
		}
	}

	return cur, nil
}

// sod returns the weighted sum of edit distances from cand to every
// string in w.
func sod[S symbol.Symbol](cand []S, w Weighted[S]) float64 {
	total := 0.0
	for i, s := range w.Strings {
		d, _ := levenshtein.Distance(cand, s, levenshtein.DefaultOptions())
		total += w.Weights[i] * float64(d)
	}
	return total
}
