package seqdist_test

import (
	"testing"

	"github.com/katalvlaran/levedit/seqdist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toSeq(strs ...string) [][]byte {
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = []byte(s)
	}
	return out
}

func TestSeq_IdenticalSequences(t *testing.T) {
	m := toSeq("kitten", "sitting")
	d, err := seqdist.Seq(m, m)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestSeq_PureInsertDelete(t *testing.T) {
	m := toSeq("a", "b")
	n := toSeq("a", "b", "c")
	d, err := seqdist.Seq(m, n)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestSeq_EmptySequences(t *testing.T) {
	d, err := seqdist.Seq[byte](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	n := toSeq("x", "y")
	d, err = seqdist.Seq[byte](nil, n)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}

func TestSeq_SingleReplace(t *testing.T) {
	m := toSeq("kitten")
	n := toSeq("sitten")
	d, err := seqdist.Seq(m, n)
	require.NoError(t, err)
	// d("kitten","sitten")=2 (one replacement, xcost=true -> replace costs 2),
	// total len=12, pair cost = 2*2/12 = 1/3.
	assert.InDelta(t, 1.0/3.0, d, 1e-9)
}

func TestSeq_CommonPrefixSuffixStripped(t *testing.T) {
	m := toSeq("a", "b", "x", "y")
	n := toSeq("a", "b", "z", "y")
	d1, err := seqdist.Seq(m, n)
	require.NoError(t, err)

	mStripped := toSeq("x")
	nStripped := toSeq("z")
	d2, err := seqdist.Seq(mStripped, nStripped)
	require.NoError(t, err)

	assert.InDelta(t, d2, d1, 1e-9)
}

// TestSeq_WithinBounds checks the testable-property bound:
// 0 <= Seq(a,b) <= len(a)+len(b).
func TestSeq_WithinBounds(t *testing.T) {
	m := toSeq("alpha", "beta", "gamma")
	n := toSeq("alpha", "delta")
	d, err := seqdist.Seq(m, n)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d, 0.0)
	assert.LessOrEqual(t, d, float64(len(m)+len(n)))
}
