// Package assignment solves the rectangular minimum-cost assignment
// problem: given an n2×n1 real cost matrix with n1 <= n2, find an
// injective mapping from each column to a distinct row minimizing the
// sum of selected costs.
//
// Solve uses the shortest-augmenting-path form of the Hungarian
// algorithm (dual source/target potentials, tight-edge search via
// minimum slack) rather than the classical star/prime/cover bookkeeping
// some Munkres descriptions use — the two are the same algorithm under
// different bookkeeping, and the source design's own notes permit
// substituting any rectangular-assignment solver meeting the optimality
// property. Non-square inputs are handled by padding the smaller side
// with zero-cost dummy columns rather than by a separate code path.
package assignment
