package median

import (
	"math"

	"github.com/katalvlaran/levedit/symbol"
)

// Quick computes a median by position voting: the output length is the
// weighted mean input length rounded via opts.QuickMedianRoundingBias,
// and each output position is filled by whichever symbol accumulates the
// highest fractional vote from every input string's corresponding
// sub-interval.
func Quick[S symbol.Symbol](w Weighted[S], opts Options) ([]S, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	if len(w.Strings) == 0 {
		return []S{}, nil
	}

	var wsum, wlsum float64
	for i, s := range w.Strings {
		wsum += w.Weights[i]
		wlsum += w.Weights[i] * float64(len(s))
	}
	if wsum == 0 {
		return []S{}, nil
	}

	outLen := int(math.Floor(wlsum/wsum + opts.QuickMedianRoundingBias))
	if outLen <= 0 {
		return []S{}, nil
	}

	alphabet := symbol.Table(w.Strings...)
	if len(alphabet) == 0 {
		return []S{}, nil
	}

	out := make([]S, outLen)
	for j := 0; j < outLen; j++ {
		votes := make(map[S]float64, len(alphabet))
		for i, s := range w.Strings {
			voteInterval(votes, s, w.Weights[i], j, outLen)
		}

		best := alphabet[0]
		bestVote := votes[best]
		for _, sigma := range alphabet[1:] {
			v := votes[sigma]
			if v > bestVote || (v == bestVote && sigma < best) {
				best, bestVote = sigma, v
			}
		}
		out[j] = best
	}

	return out, nil
}

// voteInterval adds string s's weighted vote contribution for output
// position j (of outLen total) into votes, per the fractional
// head/whole/tail rule: whole symbols in the interval's interior get the
// full weight, the fractional head and tail symbols get a weight scaled
// by how much of their span the interval actually covers.
func voteInterval[S symbol.Symbol](votes map[S]float64, s []S, weight float64, j, outLen int) {
	ls := len(s)
	if ls == 0 {
		return
	}

	start := float64(ls) * float64(j) / float64(outLen)
	end := float64(ls) * float64(j+1) / float64(outLen)
	lo := int(math.Floor(start))
	hi := int(math.Ceil(end))

	for k := lo + 1; k < hi; k++ {
		if k >= 0 && k < ls {
			votes[s[k]] += weight
		}
	}
	if lo >= 0 && lo < ls {
		votes[s[lo]] += weight * (float64(lo) + 1 - start)
	}
	if tail := hi - 1; tail >= 0 && tail < ls {
		votes[s[tail]] -= weight * (float64(hi) - end)
	}
}
