// Package levenshtein computes the edit distance between two strings and
// reconstructs the elementary edit script realizing it.
//
// Distance uses prefix/suffix stripping, a length-1 fast path, and a
// single DP row maintained over the longer string — generalizing the
// rolling-row technique dtw.DTW uses for time-series alignment to integer
// symbol alphabets. When replacement costs the same as insertion and
// deletion (XCost=false) the DP is additionally restricted to a diagonal band
// whose radius grows only as far as the true distance requires (Ukkonen's
// banding), rather than visiting the full (|S|+1)x(|T|+1) grid.
//
// EditOps instead fills the full cost matrix and backtracks from the
// bottom-right cell, applying a fixed eight-step tie-break so the
// returned script is deterministic across runs and implementations.
package levenshtein
