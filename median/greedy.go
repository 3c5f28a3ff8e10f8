package median

import (
	"math"

	"github.com/katalvlaran/levedit/symbol"
)

// Greedy builds a local (greedy) weighted-SOD minimizer one symbol at a
// time: at candidate length L it simulates appending every symbol of the
// input alphabet, ranks candidates by the weighted minimum of their
// simulated next DP row (a cheap lower-bound look-ahead), commits the
// winner, and stops once growth stops helping.
func Greedy[S symbol.Symbol](w Weighted[S], opts Options) ([]S, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	if len(w.Strings) == 0 {
		return []S{}, nil
	}

	maxlen := 0
	for _, s := range w.Strings {
		if len(s) > maxlen {
			maxlen = len(s)
		}
	}
	if maxlen == 0 {
		return []S{}, nil
	}

	alphabet := symbol.Table(w.Strings...)
	if len(alphabet) == 0 {
		return []S{}, nil
	}

	stoplen := 2*maxlen + 1
	rows := make([][]int, len(w.Strings))
	for i, s := range w.Strings {
		row := make([]int, len(s)+1)
		for j := range row {
			row[j] = j
		}
		rows[i] = row
	}

	mediandist := make([]float64, 1, stoplen+1)
	for i, s := range w.Strings {
		mediandist[0] += w.Weights[i] * float64(len(s))
	}

	candidate := make([]S, 0, stoplen)

	for l := 1; l <= stoplen; l++ {
		var bestSigma S
		bestSum := math.Inf(1)
		var bestRows [][]int

		for _, sigma := range alphabet {
			sum := 0.0
			newRows := make([][]int, len(w.Strings))
			for i, s := range w.Strings {
				nr := nextRow(rows[i], s, l, sigma)
				newRows[i] = nr
				sum += w.Weights[i] * float64(rowMin(nr))
			}
			if sum < bestSum {
				bestSum = sum
				bestSigma = sigma
				bestRows = newRows
			}
		}

		xsum := 0.0
		for i, s := range w.Strings {
			xsum += w.Weights[i] * float64(bestRows[i][len(s)])
		}
		mediandist = append(mediandist, xsum)
		candidate = append(candidate, bestSigma)
		rows = bestRows

		if l > maxlen && mediandist[l] > mediandist[l-1] {
			break
		}
	}

	bestlen := 0
	for l := 1; l < len(mediandist); l++ {
		if mediandist[l] < mediandist[bestlen] {
			bestlen = l
		}
	}

	out := make([]S, bestlen)
	copy(out, candidate[:bestlen])
	return out, nil
}

// nextRow computes the DP row for a candidate of length l ending in sigma,
// given the previous row for length l-1, against target string s.
func nextRow[S symbol.Symbol](prev []int, s []S, l int, sigma S) []int {
	next := make([]int, len(s)+1)
	next[0] = l
	for j := 1; j <= len(s); j++ {
		cost := 1
		if s[j-1] == sigma {
			cost = 0
		}
		best := prev[j] + 1
		if v := next[j-1] + 1; v < best {
			best = v
		}
		if v := prev[j-1] + cost; v < best {
			best = v
		}
		next[j] = best
	}
	return next
}

// rowMin returns the minimum value in row, seeded with GreedyMedianMinSeed
// rather than the row's own length, so the scan cannot be short-circuited
// by a seed a real cell might exceed.
func rowMin(row []int) int {
	m := GreedyMedianMinSeed
	for _, v := range row {
		if v < m {
			m = v
		}
	}
	return m
}
