package atlas

import "errors"

// ErrInvalidIndex is returned when a negative map index is requested.
var ErrInvalidIndex = errors.New("atlas: map index must be >= 0")
