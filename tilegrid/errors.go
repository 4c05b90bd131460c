package tilegrid

import "errors"

// Sentinel errors for tilegrid operations.
var (
	// ErrOutOfBounds indicates a Coord outside the grid's width/height.
	ErrOutOfBounds = errors.New("tilegrid: coordinate out of bounds")

	// ErrMissingConstraint indicates the constraint table has no entry for
	// a TileType that was encountered while propagating. This is a data
	// error (an incomplete tile catalogue), not a solver contradiction.
	ErrMissingConstraint = errors.New("tilegrid: missing supports entry for tile type")

	// ErrTooManyTileTypes indicates a constraint table was asked to hold
	// more tile types than domain.MaxTileTypes allows.
	ErrTooManyTileTypes = errors.New("tilegrid: tile catalogue exceeds maximum size")

	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("tilegrid: width and height must be positive")
)
