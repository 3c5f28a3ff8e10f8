// Package levedit is a synchronous, allocation-only computational core
// for edit distance, edit-script reconstruction and algebra,
// generalized-median strings, and sequence/set distance via assignment.
//
// 🚀 What is levedit?
//
//	A small, symbol-generic (byte or rune alphabets) library that brings
//	together:
//
//	  • Edit distance & reconstruction: Levenshtein distance, Hamming
//	    distance, and full elementary edit-script backtracking
//	  • Script algebra: normalize, invert, convert between elementary and
//	    block (opcode) representations, subtract one script from another
//	  • Generalized median strings: Greedy, Improve, Quick, and SetMedian
//	  • Sequence/set distance: double-Levenshtein over sequences of
//	    strings, with an order-independent variant via assignment
//
// ✨ Why choose levedit?
//
//   - Symbol-generic    — one algorithm, two alphabet families (byte, rune)
//   - Allocation-only   — no host bindings, no hidden state, no logging
//   - Composable        — script algebra and median family share one
//     elementary EditOp vocabulary
//   - Pure Go           — relies on a small, audited third-party stack
//
// Under the hood, everything is organized under focused subpackages:
//
//	symbol/      — alphabet deduplication (byte and rune families)
//	editop/      — EditOp/Script/OpCode/OpcodeList and their algebra
//	levenshtein/ — Distance, Hamming, EditOps
//	median/      — Greedy, Improve, Quick, SetMedian
//	numat/       — shared real-valued matrix substrate
//	assignment/  — rectangular minimum-cost assignment (Munkres)
//	seqdist/     — Seq and Set distance over sequences of strings
//
// Quick example:
//
//	d, _ := levenshtein.Distance([]byte("kitten"), []byte("sitting"), levenshtein.DefaultOptions())
//	// d == 3
//
// This package re-exports the most common entry points so a caller who
// only needs edit distance and scripts doesn't have to import every
// subpackage by hand; callers who need the median or assignment families
// import those subpackages directly.
package levedit
