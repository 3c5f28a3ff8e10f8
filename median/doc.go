// Package median computes generalized-median strings over a weighted
// collection: a string minimizing the weighted sum of edit distances
// (SOD) to every member of the collection.
//
// # Algorithms
//
//	Greedy  — builds a candidate one symbol at a time, at each step
//	          picking the symbol whose simulated next DP row has the
//	          lowest weighted row-minimum, a cheap look-ahead that beats
//	          ranking by row-end cost alone at no extra asymptotic cost.
//	Improve — given a seed candidate, tries Replace/Insert/Delete at
//	          every position and keeps the best strict improvement,
//	          never returning a string worse than the seed.
//	Quick   — fixes the output length from the weighted mean input
//	          length, then fills each position by a fractional
//	          positional vote across every input string.
//	SetMedian — restricts the search to the input strings themselves,
//	          returning whichever has the lowest weighted SOD.
//
// All four operate over median.Weighted[S], a parallel (strings, weights)
// collection generic over symbol.Symbol, the same alphabet constraint
// levenshtein and symbol use.
package median
