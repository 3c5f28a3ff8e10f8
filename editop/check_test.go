package editop_test

import (
	"testing"

	"github.com/katalvlaran/levedit/editop"
	"github.com/stretchr/testify/assert"
)

func TestCheckElementary(t *testing.T) {
	cases := []struct {
		name    string
		ops     editop.Script
		lenS    int
		lenD    int
		wantErr error
	}{
		{"empty", nil, 3, 3, nil},
		{
			"valid replace+insert",
			editop.Script{
				{Kind: editop.Replace, SPos: 0, DPos: 0},
				{Kind: editop.Insert, SPos: 1, DPos: 1},
			},
			1, 2, nil,
		},
		{
			"unknown kind",
			editop.Script{{Kind: editop.Kind(99), SPos: 0, DPos: 0}},
			1, 1, editop.ErrTypeError,
		},
		{
			"out of bounds",
			editop.Script{{Kind: editop.Replace, SPos: 5, DPos: 0}},
			1, 1, editop.ErrOutOfBounds,
		},
		{
			"delete at end of source, empty destination",
			editop.Script{{Kind: editop.Delete, SPos: 0, DPos: 0}},
			1, 0, nil,
		},
		{
			"out of order",
			editop.Script{
				{Kind: editop.Replace, SPos: 1, DPos: 1},
				{Kind: editop.Replace, SPos: 0, DPos: 2},
			},
			2, 3, editop.ErrOrderError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := editop.CheckElementary(tc.ops, tc.lenS, tc.lenD)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCheckBlock(t *testing.T) {
	cases := []struct {
		name    string
		ops     editop.OpcodeList
		lenS    int
		lenD    int
		wantErr error
	}{
		{"empty both zero", nil, 0, 0, nil},
		{"empty nonzero", nil, 2, 2, editop.ErrSpanError},
		{
			"valid tiling",
			editop.OpcodeList{
				{Kind: editop.Keep, SBeg: 0, SEnd: 2, DBeg: 0, DEnd: 2},
				{Kind: editop.Replace, SBeg: 2, SEnd: 4, DBeg: 2, DEnd: 4},
				{Kind: editop.Keep, SBeg: 4, SEnd: 6, DBeg: 4, DEnd: 6},
			},
			6, 6, nil,
		},
		{
			"does not start at origin",
			editop.OpcodeList{{Kind: editop.Keep, SBeg: 1, SEnd: 2, DBeg: 0, DEnd: 1}},
			2, 1, editop.ErrSpanError,
		},
		{
			"does not end at full span",
			editop.OpcodeList{{Kind: editop.Keep, SBeg: 0, SEnd: 1, DBeg: 0, DEnd: 1}},
			2, 1, editop.ErrSpanError,
		},
		{
			"bad replace shape",
			editop.OpcodeList{{Kind: editop.Replace, SBeg: 0, SEnd: 2, DBeg: 0, DEnd: 1}},
			2, 1, editop.ErrBlockError,
		},
		{
			"bad insert shape",
			editop.OpcodeList{{Kind: editop.Insert, SBeg: 0, SEnd: 1, DBeg: 0, DEnd: 1}},
			1, 1, editop.ErrBlockError,
		},
		{
			"gap between blocks",
			editop.OpcodeList{
				{Kind: editop.Keep, SBeg: 0, SEnd: 1, DBeg: 0, DEnd: 1},
				{Kind: editop.Keep, SBeg: 2, SEnd: 3, DBeg: 2, DEnd: 3},
			},
			3, 3, editop.ErrOrderError,
		},
		{
			"unknown kind also fails to start at origin",
			editop.OpcodeList{{Kind: editop.Kind(99), SBeg: 1, SEnd: 2, DBeg: 0, DEnd: 1}},
			2, 1, editop.ErrTypeError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := editop.CheckBlock(tc.ops, tc.lenS, tc.lenD)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
