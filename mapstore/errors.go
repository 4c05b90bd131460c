package mapstore

import "errors"

// Sentinel errors for mapstore operations.
var (
	// ErrNotFound indicates no row exists for the requested run ID.
	ErrNotFound = errors.New("mapstore: no map found for run id")
)
