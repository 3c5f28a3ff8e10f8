package numat

// DefaultEpsilon is the absolute tolerance below which a value snaps to
// zero, matching lvlath/matrix's default numeric policy. Package assignment
// overrides this via WithEpsilon with a tighter tolerance for its padded
// cost matrix.
const DefaultEpsilon = 1e-9

// Options carries the numeric policy for a Dense matrix: the snap-to-zero
// tolerance and whether NaN/Inf values are rejected outright.
type Options struct {
	Epsilon   float64
	RejectNaN bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the baseline numeric policy: DefaultEpsilon,
// NaN/Inf rejected.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, RejectNaN: true}
}

// WithEpsilon overrides the snap-to-zero tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithNaNAllowed disables NaN/Inf rejection on Set.
func WithNaNAllowed() Option {
	return func(o *Options) { o.RejectNaN = false }
}

// snap rounds v to zero when it falls within the configured epsilon, so
// float noise near zero is stored as an exact zero.
func (o Options) snap(v float64) float64 {
	if v > -o.Epsilon && v < o.Epsilon {
		return 0
	}
	return v
}
