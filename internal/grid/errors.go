package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidFootprint is returned when a placement request has a
// non-positive width or height. It is rejected before any grid access.
var ErrInvalidFootprint = errors.New("invalid footprint: size must be positive")

// ConflictError reports a rejected multi-cell placement. The placement
// committed nothing; the caller may retry elsewhere.
type ConflictError struct {
	Cell Point // first conflicting cell found, in row-major scan order
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("occupancy conflict at %s", e.Cell)
}
