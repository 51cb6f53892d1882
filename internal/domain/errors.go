package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidSortMode indicates a sort mode outside the four recognized values
	ErrInvalidSortMode = errors.New("invalid sort mode")
)
