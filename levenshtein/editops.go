package levenshtein

import (
	"github.com/katalvlaran/levedit/editop"
	"github.com/katalvlaran/levedit/symbol"
)

// EditOps returns the normalized elementary edit script transforming s
// into t, realizing Distance(s, t, Options{XCost: false}). Among optimal
// scripts, ties are broken deterministically by the eight-step rule
// backtrack implements, favoring a run of Inserts or Deletes already in
// progress over switching direction, so repeated calls on the same
// inputs always return the same script.
func EditOps[S symbol.Symbol](s, t []S) (editop.Script, error) {
	p := 0
	for p < len(s) && p < len(t) && s[p] == t[p] {
		p++
	}
	ss, tt := s[p:], t[p:]

	q := 0
	for q < len(ss) && q < len(tt) && ss[len(ss)-1-q] == tt[len(tt)-1-q] {
		q++
	}
	ss, tt = ss[:len(ss)-q], tt[:len(tt)-q]

	n, m := len(ss), len(tt)
	mat := make([][]int, n+1)
	for i := range mat {
		mat[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		mat[0][j] = j
	}
	for i := 0; i <= n; i++ {
		mat[i][0] = i
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ss[i-1] == tt[j-1] {
				cost = 0
			}
			best := mat[i-1][j-1] + cost
			if v := mat[i-1][j] + 1; v < best {
				best = v
			}
			if v := mat[i][j-1] + 1; v < best {
				best = v
			}
			mat[i][j] = best
		}
	}

	rev, err := backtrack(mat, ss, tt)
	if err != nil {
		return nil, err
	}

	full := make(editop.Script, 0, len(rev))
	for k := len(rev) - 1; k >= 0; k-- {
		op := rev[k]
		full = append(full, editop.EditOp{Kind: op.Kind, SPos: op.SPos + p, DPos: op.DPos + p})
	}

	return editop.Normalize(full), nil
}

// backtrack walks the cost matrix from (len(ss), len(tt)) to (0, 0),
// applying the eight-step tie-break rule at each cell and returning the
// resulting script in reverse (destination-to-source) order.
func backtrack[S symbol.Symbol](mat [][]int, ss, tt []S) (editop.Script, error) {
	i, j := len(ss), len(tt)
	var dir int // -1: last move was Insert, +1: last move was Delete, 0: none/reset
	out := make(editop.Script, 0, i+j)

	for i > 0 || j > 0 {
		switch {
		case dir < 0 && j > 0 && mat[i][j-1]+1 == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Insert, SPos: i, DPos: j - 1})
			j--
		case dir > 0 && i > 0 && mat[i-1][j]+1 == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Delete, SPos: i - 1, DPos: j})
			i--
		case i > 0 && j > 0 && ss[i-1] == tt[j-1] && mat[i-1][j-1] == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Keep, SPos: i - 1, DPos: j - 1})
			i--
			j--
			dir = 0
		case i > 0 && j > 0 && mat[i-1][j-1]+1 == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Replace, SPos: i - 1, DPos: j - 1})
			i--
			j--
			dir = 0
		case dir == 0 && j > 0 && mat[i][j-1]+1 == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Insert, SPos: i, DPos: j - 1})
			j--
			dir = -1
		case dir == 0 && i > 0 && mat[i-1][j]+1 == mat[i][j]:
			out = append(out, editop.EditOp{Kind: editop.Delete, SPos: i - 1, DPos: j})
			i--
			dir = 1
		default:
			return nil, ErrInconsistentMatrix
		}
	}

	return out, nil
}
