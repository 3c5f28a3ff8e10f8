package median_test

import (
	"testing"

	"github.com/katalvlaran/levedit/median"
)

func benchmarkCollection(n, l int) median.Weighted[byte] {
	strs := make([][]byte, n)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		s := make([]byte, l)
		for j := 0; j < l; j++ {
			s[j] = byte('a' + (i+j)%26)
		}
		strs[i] = s
		weights[i] = 1
	}
	return median.Weighted[byte]{Strings: strs, Weights: weights}
}

// BenchmarkGreedy_10x20 benchmarks Greedy over 10 strings of length 20.
func BenchmarkGreedy_10x20(b *testing.B) {
	w := benchmarkCollection(10, 20)
	opts := median.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := median.Greedy(w, opts); err != nil {
			b.Fatalf("Greedy failed: %v", err)
		}
	}
}

// BenchmarkQuick_10x20 benchmarks Quick over 10 strings of length 20.
func BenchmarkQuick_10x20(b *testing.B) {
	w := benchmarkCollection(10, 20)
	opts := median.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := median.Quick(w, opts); err != nil {
			b.Fatalf("Quick failed: %v", err)
		}
	}
}
