package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// Sentinel errors for solver operations.
var (
	// ErrNoTileTypes indicates a solver was constructed with an empty full
	// domain; there is nothing to collapse any cell to.
	ErrNoTileTypes = errors.New("solver: full domain must contain at least one tile type")

	// ErrUnsolvable indicates backtracking exhausted the entire history
	// without finding a viable earlier explicit collapse to re-target. The
	// grid as given, under this constraint table, has no solution.
	ErrUnsolvable = errors.New("solver: no solution exists under the given constraints")
)

// contradictionKind distinguishes the two internal failure modes collapse
// and backtrack must recover from locally; neither ever escapes the package.
type contradictionKind int

const (
	emptyDomain contradictionKind = iota
	exhaustedPaths
)

// contradiction is raised during propagation or backtracking and handled by
// the loop in collapse; it never reaches a caller of Next.
type contradiction struct {
	kind     contradictionKind
	coord    tilegrid.Coord
	tileType domain.TileType
}

func (c *contradiction) Error() string {
	switch c.kind {
	case emptyDomain:
		return fmt.Sprintf("solver: a neighbour domain went empty while propagating the collapse of %v to %v", c.coord, c.tileType)
	case exhaustedPaths:
		return fmt.Sprintf("solver: no valid tile types remain at %v after removing %v", c.coord, c.tileType)
	default:
		return "solver: contradiction"
	}
}
