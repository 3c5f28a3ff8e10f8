package levenshtein

import "github.com/katalvlaran/levedit/symbol"

// infBand marks a cell outside the active band as unreachable. It must
// stay well below the int overflow point even after a +1 update, and
// well above any real distance a band search will try before widening.
const infBand = 1 << 30

// Distance returns the edit distance between s and t: the minimum number
// of insertions, deletions, and (if opts.XCost is false) same-cost
// replacements, or twice-cost replacements if opts.XCost is true,
// needed to transform s into t.
func Distance[S symbol.Symbol](s, t []S, opts Options) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	p := 0
	for p < len(s) && p < len(t) && s[p] == t[p] {
		p++
	}
	s, t = s[p:], t[p:]

	q := 0
	for q < len(s) && q < len(t) && s[len(s)-1-q] == t[len(t)-1-q] {
		q++
	}
	s, t = s[:len(s)-q], t[:len(t)-q]

	if len(s) == 0 {
		return len(t), nil
	}
	if len(t) == 0 {
		return len(s), nil
	}

	short, long := s, t
	if len(short) > len(long) {
		short, long = long, short
	}

	if len(short) == 1 {
		found := false
		for _, c := range long {
			if c == short[0] {
				found = true
				break
			}
		}
		switch {
		case opts.XCost && found:
			return len(long) - 1, nil
		case opts.XCost && !found:
			return len(long) + 1, nil
		case found:
			return len(long) - 1, nil
		default:
			return len(long), nil
		}
	}

	if opts.XCost {
		return distanceFullDP(short, long, true), nil
	}
	return distanceBanded(short, long), nil
}

// distanceFullDP is the standard single-row Wagner-Fischer recurrence over
// the full width of long, used directly when XCost=true (banding only
// pays off under the unit-cost replace convention) and as the band
// search's final fallback.
func distanceFullDP[S symbol.Symbol](short, long []S, xcost bool) int {
	n, m := len(short), len(long)
	row := make([]int, m+1)
	for j := 0; j <= m; j++ {
		row[j] = j
	}
	replaceCost := 1
	if xcost {
		replaceCost = 2
	}
	for i := 1; i <= n; i++ {
		prevDiag := row[0]
		row[0] = i
		for j := 1; j <= m; j++ {
			tmp := row[j]
			cost := replaceCost
			if short[i-1] == long[j-1] {
				cost = 0
			}
			best := prevDiag + cost
			if v := row[j] + 1; v < best {
				best = v
			}
			if v := row[j-1] + 1; v < best {
				best = v
			}
			row[j] = best
			prevDiag = tmp
		}
	}
	return row[m]
}

// distanceBanded computes the XCost=false distance by Ukkonen's adaptive
// banding: the DP is restricted to cells with |i-j| <= k, which gives the
// exact distance once k reaches the true distance (any optimal path's
// drift from the main diagonal is bounded by the number of indels it
// uses, which is bounded by the path's total cost). k starts at the
// cheapest possible distance, m-n (at least 1), and doubles until the band-restricted
// answer certifies itself (d <= k) or the band covers the whole matrix.
func distanceBanded[S symbol.Symbol](short, long []S) int {
	n, m := len(short), len(long)
	k := m - n
	if k < 1 {
		k = 1
	}
	for k < m {
		if d, ok := bandedDP(short, long, k); ok && d <= k {
			return d
		}
		k *= 2
	}
	return distanceFullDP(short, long, false)
}

// bandedDP runs the unit-cost DP restricted to |i-j| <= k. ok is false
// when the band was too narrow for the bottom-right cell to be reached at
// all; in that case the caller must widen the band and retry.
func bandedDP[S symbol.Symbol](short, long []S, k int) (dist int, ok bool) {
	n, m := len(short), len(long)
	row := make([]int, m+1)
	for j := 0; j <= m; j++ {
		if j <= k {
			row[j] = j
		} else {
			row[j] = infBand
		}
	}

	for i := 1; i <= n; i++ {
		next := make([]int, m+1)
		for j := range next {
			next[j] = infBand
		}
		if i <= k {
			next[0] = i
		}
		lo := i - k
		if lo < 1 {
			lo = 1
		}
		hi := i + k
		if hi > m {
			hi = m
		}
		for j := lo; j <= hi; j++ {
			cost := 1
			if short[i-1] == long[j-1] {
				cost = 0
			}
			best := row[j-1] + cost
			if v := row[j] + 1; v < best {
				best = v
			}
			if v := next[j-1] + 1; v < best {
				best = v
			}
			next[j] = best
		}
		row = next
	}

	if row[m] >= infBand {
		return 0, false
	}
	return row[m], true
}

// Hamming returns the number of positions at which s and t differ. Both
// strings must have the same length.
func Hamming[S symbol.Symbol](s, t []S) (int, error) {
	if len(s) != len(t) {
		return 0, ErrLengthMismatch
	}
	n := 0
	for i := range s {
		if s[i] != t[i] {
			n++
		}
	}
	return n, nil
}
