package editop_test

import (
	"fmt"

	"github.com/katalvlaran/levedit/editop"
)

// ExampleToOpcodes converts a normalized elementary script into its block
// representation for opcodes("abcdef", "abXYef").
func ExampleToOpcodes() {
	ops := editop.Script{
		{Kind: editop.Replace, SPos: 2, DPos: 2},
		{Kind: editop.Replace, SPos: 3, DPos: 3},
	}
	for _, op := range editop.ToOpcodes(ops, 6, 6) {
		fmt.Printf("%s %d..%d/%d..%d\n", op.Kind, op.SBeg, op.SEnd, op.DBeg, op.DEnd)
	}
	// Output:
	// keep 0..2/0..2
	// replace 2..4/2..4
	// keep 4..6/4..6
}

// ExampleApply applies an elementary script to its source and destination
// strings, recovering the destination verbatim.
func ExampleApply() {
	s := []byte("abcd")
	d := []byte("xbcyd")
	ops := editop.Script{
		{Kind: editop.Replace, SPos: 0, DPos: 0},
		{Kind: editop.Insert, SPos: 3, DPos: 3},
	}
	fmt.Println(string(editop.Apply(ops, s, d)))
	// Output:
	// xbcyd
}
