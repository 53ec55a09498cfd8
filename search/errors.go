package search

import "errors"

var (
	// ErrNotExecuted is returned when a result is requested before Execute.
	ErrNotExecuted = errors.New("search: algorithm has not been executed")

	// ErrAlreadyExecuted is returned when Execute is called more than once on
	// the same instance. Searches are single-use.
	ErrAlreadyExecuted = errors.New("search: algorithm has already been executed")

	// ErrBadMaxDistance is returned when a distance bound is negative or NaN.
	ErrBadMaxDistance = errors.New("search: max distance must be non-negative")
)
