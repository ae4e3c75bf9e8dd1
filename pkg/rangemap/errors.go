package rangemap

import "errors"

var (
	// ErrOverlap is returned when a strict insert, bulk construction or
	// decode would violate the disjointness invariant.
	ErrOverlap = errors.New("intervals overlap")
)
