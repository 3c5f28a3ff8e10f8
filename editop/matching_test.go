package editop_test

import (
	"testing"

	"github.com/katalvlaran/levedit/editop"
	"github.com/stretchr/testify/assert"
)

func TestMatchingBlocksFromElementary(t *testing.T) {
	ops := editop.Script{
		{Kind: editop.Replace, SPos: 2, DPos: 2},
		{Kind: editop.Replace, SPos: 3, DPos: 3},
	}
	got := editop.MatchingBlocksFromElementary(ops, 6, 6)
	want := editop.MatchingBlockList{
		{SPos: 0, DPos: 0, Len: 2},
		{SPos: 4, DPos: 4, Len: 2},
	}
	assert.Equal(t, want, got)
}

func TestMatchingBlocksFromBlock(t *testing.T) {
	bops := editop.OpcodeList{
		{Kind: editop.Keep, SBeg: 0, SEnd: 1, DBeg: 0, DEnd: 1},
		{Kind: editop.Delete, SBeg: 1, SEnd: 2, DBeg: 1, DEnd: 1},
		{Kind: editop.Keep, SBeg: 2, SEnd: 3, DBeg: 1, DEnd: 2},
	}
	got := editop.MatchingBlocksFromBlock(bops)
	want := editop.MatchingBlockList{
		{SPos: 0, DPos: 0, Len: 1},
		{SPos: 2, DPos: 1, Len: 1},
	}
	assert.Equal(t, want, got)
}

func TestMatchingBlocksFromElementary_NoEdits(t *testing.T) {
	got := editop.MatchingBlocksFromElementary(nil, 4, 4)
	assert.Equal(t, editop.MatchingBlockList{{SPos: 0, DPos: 0, Len: 4}}, got)
}
