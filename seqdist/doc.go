// Package seqdist computes edit distance one level up the alphabet: its
// "symbols" are whole strings rather than individual characters. Seq
// treats two ordered sequences of strings as a pair of strings over a
// string-valued alphabet and runs the single-row Levenshtein recurrence
// of package levenshtein over them, with a fractional per-pair
// replacement cost in place of the usual unit cost. Set solves the same
// problem order-independently by routing the pairwise cost matrix
// through package assignment.
//
// Seq is adapted from package dtw's rolling single-row DP
// engine — same boundary initialization, same three-way recurrence
// shape — generalized from a fixed |a[i]-b[j]| numeric cost to a
// pluggable per-pair cost function, and from float64 sequences to
// sequences of strings over a generic symbol alphabet.
package seqdist
