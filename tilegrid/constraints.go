package tilegrid

import "github.com/katalvlaran/tessellate/domain"

// ConstraintTable holds, for every TileType and every Direction, the
// Domain of tile types permitted to occupy the neighbour at that direction.
// It is built once (by the tiledata loader, or directly by tests) and is
// immutable afterward; the solver only ever reads it, so a single table
// may be shared by value or by pointer across concurrent callers without
// locking.
type ConstraintTable struct {
	supports [domain.MaxTileTypes][4]domain.Domain
	present  [domain.MaxTileTypes]bool
}

// NewConstraintTable returns an empty table. Callers populate it with Set
// before handing it to a Grid/solver.
func NewConstraintTable() *ConstraintTable {
	return &ConstraintTable{}
}

// Set records that, when the centre cell is tileType, the neighbour lying
// in direction dir may be any member of allowed.
func (c *ConstraintTable) Set(tileType domain.TileType, dir Direction, allowed domain.Domain) {
	c.supports[tileType][dir] = allowed
	c.present[tileType] = true
}

// Supports returns supports(tileType, dir) and true, or an empty Domain and
// false if no entry was ever recorded for tileType via Set.
func (c *ConstraintTable) Supports(tileType domain.TileType, dir Direction) (domain.Domain, bool) {
	if !c.present[tileType] {
		return domain.Empty(), false
	}
	return c.supports[tileType][dir], true
}

// HasEntry reports whether tileType has any recorded constraints.
func (c *ConstraintTable) HasEntry(tileType domain.TileType) bool {
	return c.present[tileType]
}
