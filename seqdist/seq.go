package seqdist

import (
	"github.com/katalvlaran/levedit/levenshtein"
	"github.com/katalvlaran/levedit/symbol"
)

// fracDistance returns the Levenshtein distance between a and b scaled
// by the sum of their lengths, landing in [0, 1]. Identical zero-length
// strings cost 0 by definition rather than dividing by zero. This is the
// raw fractional distance Set assembles its cost matrix from; pairCost
// doubles it for Seq's replacement-cost convention.
func fracDistance[S symbol.Symbol](a, b []S) (float64, error) {
	if len(a) == 0 && len(b) == 0 {
		return 0, nil
	}
	d, err := levenshtein.Distance(a, b, levenshtein.Options{XCost: true})
	if err != nil {
		return 0, err
	}
	return float64(d) / float64(len(a)+len(b)), nil
}

// pairCost returns the fractional replacement cost between strings a and
// b used by Seq: twice fracDistance, landing in [0, 2].
func pairCost[S symbol.Symbol](a, b []S) (float64, error) {
	f, err := fracDistance(a, b)
	if err != nil {
		return 0, err
	}
	return 2 * f, nil
}

// Seq computes the double-Levenshtein distance between two ordered
// sequences of strings: the minimum-cost way to transform M into N by
// inserting, deleting, or replacing whole strings, where replacing A
// with B costs pairCost(A, B) and insert/delete cost 1 per string. It is
// order-sensitive; use Set for the order-independent variant.
func Seq[S symbol.Symbol](m, n [][]S) (float64, error) {
	p := 0
	for p < len(m) && p < len(n) && equalStrings(m[p], n[p]) {
		p++
	}
	m, n = m[p:], n[p:]

	q := 0
	for q < len(m) && q < len(n) && equalStrings(m[len(m)-1-q], n[len(n)-1-q]) {
		q++
	}
	m, n = m[:len(m)-q], n[:len(n)-q]

	rows, cols := len(m), len(n)
	if rows == 0 {
		return float64(cols), nil
	}
	if cols == 0 {
		return float64(rows), nil
	}

	prev := make([]float64, cols+1)
	curr := make([]float64, cols+1)
	for j := 0; j <= cols; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= rows; i++ {
		curr[0] = float64(i)
		for j := 1; j <= cols; j++ {
			cost, err := pairCost(m[i-1], n[j-1])
			if err != nil {
				return 0, err
			}
			replace := prev[j-1] + cost
			insCost := curr[j-1] + 1
			delCost := prev[j] + 1
			best := replace
			if insCost < best {
				best = insCost
			}
			if delCost < best {
				best = delCost
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[cols], nil
}

// equalStrings reports whether a and b hold the same symbols in the
// same order.
func equalStrings[S symbol.Symbol](a, b []S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
