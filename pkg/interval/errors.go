package interval

import "errors"

var (
	// ErrInvalidInterval is returned when an interval passed to an API is
	// malformed or empty under its domain.
	ErrInvalidInterval = errors.New("invalid interval")
)
