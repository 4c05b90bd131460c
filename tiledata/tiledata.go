package tiledata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// fileConstraints is the on-disk shape of one tile's adjacency rules.
type fileConstraints struct {
	Top    []string `json:"top"`
	Right  []string `json:"right"`
	Bottom []string `json:"bottom"`
	Left   []string `json:"left"`
}

// file is the on-disk shape of a tile data document: the full catalogue of
// tile names and, for each, the names permitted in each direction.
type file struct {
	Tiles    []string                   `json:"tiles"`
	Supports map[string]fileConstraints `json:"supports"`
}

// TileData is a loaded, validated tile catalogue: the full domain of tile
// types, the constraint table built from it, and the name each ordinal was
// loaded under (for rendering and persistence, which deal in names rather
// than bare ordinals).
type TileData struct {
	Names       []string // Names[t] is the name of domain.TileType(t)
	FullDomain  domain.Domain
	Constraints *tilegrid.ConstraintTable

	byName map[string]domain.TileType
}

// TypeByName returns the TileType registered under name, or false if name
// was never declared.
func (td *TileData) TypeByName(name string) (domain.TileType, bool) {
	t, ok := td.byName[name]
	return t, ok
}

// NameOf returns the declared name for t, or "" if t is out of range.
func (td *TileData) NameOf(t domain.TileType) string {
	if int(t) < 0 || int(t) >= len(td.Names) {
		return ""
	}
	return td.Names[t]
}

// Load reads and validates a tile data file at path. Every tile named in
// supports must also appear in tiles (no dangling references), every tile
// in tiles must have a supports entry, and the catalogue must fit within
// domain.MaxTileTypes.
func Load(path string) (*TileData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiledata: read %s: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("tiledata: parse %s: %w", path, err)
	}

	return fromFile(f)
}

func fromFile(f file) (*TileData, error) {
	if len(f.Tiles) == 0 {
		return nil, ErrNoTiles
	}
	if len(f.Tiles) > domain.MaxTileTypes {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyTiles, len(f.Tiles))
	}

	byName := make(map[string]domain.TileType, len(f.Tiles))
	for i, name := range f.Tiles {
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTile, name)
		}
		byName[name] = domain.TileType(i)
	}

	full := domain.Empty()
	for _, t := range byName {
		full = full.Insert(t)
	}

	resolve := func(names []string) (domain.Domain, error) {
		d := domain.Empty()
		for _, name := range names {
			t, ok := byName[name]
			if !ok {
				return domain.Empty(), fmt.Errorf("%w: %q", ErrDanglingReference, name)
			}
			d = d.Insert(t)
		}
		return d, nil
	}

	ct := tilegrid.NewConstraintTable()
	for _, name := range f.Tiles {
		c, ok := f.Supports[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingSupports, name)
		}
		t := byName[name]

		for _, pair := range []struct {
			dir   tilegrid.Direction
			names []string
		}{
			{tilegrid.Top, c.Top},
			{tilegrid.Right, c.Right},
			{tilegrid.Bottom, c.Bottom},
			{tilegrid.Left, c.Left},
		} {
			d, err := resolve(pair.names)
			if err != nil {
				return nil, err
			}
			ct.Set(t, pair.dir, d)
		}
	}

	return &TileData{
		Names:       append([]string(nil), f.Tiles...),
		FullDomain:  full,
		Constraints: ct,
		byName:      byName,
	}, nil
}
