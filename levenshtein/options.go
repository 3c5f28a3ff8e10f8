package levenshtein

// Options configures Distance. XCost selects whether a replacement costs
// the same as an insertion/deletion (false, the default) or twice as much
// (true) — the sole knob the algorithm exposes.
type Options struct {
	XCost bool
}

// DefaultOptions returns Options{XCost: false}.
func DefaultOptions() Options {
	return Options{XCost: false}
}

// Validate reports whether o is usable. Every value of Options is
// currently valid; the method exists for parity with the rest of this
// module's Options types and is exercised on every call to Distance.
func (o Options) Validate() error {
	return nil
}
