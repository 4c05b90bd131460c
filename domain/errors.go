package domain

import "errors"

// Sentinel errors for domain operations.
var (
	// ErrTileTypeOutOfRange indicates an ordinal outside [0, MaxTileTypes).
	ErrTileTypeOutOfRange = errors.New("domain: tile type ordinal out of range")
)
