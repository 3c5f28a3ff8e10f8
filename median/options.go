package median

import "math"

// QuickMedianRoundingBias is the additive fudge Quick uses when rounding
// the weighted-mean output length: floor(ratio + bias). At bias =
// 0.499999 this rounds half-down on an exact .5 quotient rather than
// half-up. Quick's property tests assert this exact tie behavior.
const QuickMedianRoundingBias = 0.499999

// GreedyMedianMinSeed seeds the running minimum Greedy takes over a
// simulated DP row. Seeding with the candidate's current length
// risks a reachable row value exceeding the seed on long strings; using
// a value no real distance can reach instead guarantees the scan always
// converges to the row's true minimum regardless of row length.
// TestGreedyMedianMinSeed_NeverUnderLow pins this via property test.
const GreedyMedianMinSeed = math.MaxInt32

// Options configures the Quick voting rounding rule. Greedy, Improve, and
// SetMedian take no options of their own — every knob they expose is
// already fixed by contract.
type Options struct {
	QuickMedianRoundingBias float64
}

// DefaultOptions returns Options{QuickMedianRoundingBias: QuickMedianRoundingBias}.
func DefaultOptions() Options {
	return Options{QuickMedianRoundingBias: QuickMedianRoundingBias}
}

// Validate reports whether o is usable: the rounding bias must fall in
// [0, 1).
func (o Options) Validate() error {
	if o.QuickMedianRoundingBias < 0 || o.QuickMedianRoundingBias >= 1 {
		return ErrBadOptions
	}
	return nil
}
