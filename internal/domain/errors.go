package domain

import "errors"

var (
	// ErrUnavailable signals that the catalog store cannot be reached.
	ErrUnavailable = errors.New("catalog store unavailable")
	// ErrInvalidSort signals an unknown sort option.
	ErrInvalidSort = errors.New("invalid sort option")
)
