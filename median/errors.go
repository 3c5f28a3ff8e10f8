package median

import "errors"

// Sentinel errors, in priority order: option validation, then collection
// shape, then weight-value violations.
var (
	// ErrBadOptions indicates an invalid Options combination.
	ErrBadOptions = errors.New("median: invalid options combination")

	// ErrEmptyInput indicates a Weighted collection with no strings.
	ErrEmptyInput = errors.New("median: collection is empty")

	// ErrWeightMismatch indicates len(Strings) != len(Weights).
	ErrWeightMismatch = errors.New("median: weights length does not match strings length")

	// ErrNonPositiveWeight indicates a weight <= 0.
	ErrNonPositiveWeight = errors.New("median: weights must be positive")
)
