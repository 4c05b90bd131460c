package tiledata

import "errors"

// Sentinel errors for tiledata operations.
var (
	// ErrTooManyTiles indicates the file names more tile types than
	// domain.MaxTileTypes can represent.
	ErrTooManyTiles = errors.New("tiledata: catalogue exceeds the maximum of 32 tile types")

	// ErrNoTiles indicates the file's tiles array is empty.
	ErrNoTiles = errors.New("tiledata: catalogue must name at least one tile type")

	// ErrMissingSupports indicates a tile named in tiles has no entry in
	// supports at all.
	ErrMissingSupports = errors.New("tiledata: tile type has no supports entry")

	// ErrDanglingReference indicates a supports entry names a tile type
	// that does not appear in tiles.
	ErrDanglingReference = errors.New("tiledata: supports entry references an undeclared tile type")

	// ErrDuplicateTile indicates the same tile name appears twice in tiles.
	ErrDuplicateTile = errors.New("tiledata: duplicate tile type name")
)
