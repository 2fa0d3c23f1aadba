package placename

import "errors"

// Package-specific errors. Every load failure wraps one of these sentinels;
// all other operations are total over a loaded Generator and never fail.
var (
	// ErrUnreadableSource is returned when the dataset source cannot be read.
	ErrUnreadableSource = errors.New("failed to read dataset source")

	// ErrInvalidDocument is returned when the source does not parse as a
	// mapping with the expected dataset fields.
	ErrInvalidDocument = errors.New("dataset document is not a valid mapping")

	// ErrMissingParts is returned when the required "parts" field is absent
	// or has fewer than two fragment pools.
	ErrMissingParts = errors.New("dataset must define at least two fragment pools in \"parts\"")

	// ErrEmptyPool is returned when either base pool is empty after blank
	// fragments are dropped.
	ErrEmptyPool = errors.New("base fragment pools must not be empty")
)
