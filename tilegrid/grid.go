package tilegrid

import "github.com/katalvlaran/tessellate/domain"

// Cell is one grid position: an optional collapsed tile type and the
// current domain of tile types still possible at this cell.
//
// Invariants (enforced by Grid and the solver, never by Cell itself):
//   - If Collapsed is true, CurrentDomain contains exactly {TileType}.
//   - CurrentDomain is non-empty for every cell still owned by the
//     entropy queue; an empty domain is an in-flight contradiction, not a
//     resting state.
type Cell struct {
	Collapsed     bool
	TileType      domain.TileType
	CurrentDomain domain.Domain
}

// Entropy returns the cardinality of the cell's current domain.
func (c Cell) Entropy() int {
	return c.CurrentDomain.Entropy()
}

// Grid is a fixed-size rectangular array of Cells addressed by Coord. There
// is no wrap-around: neighbours are clipped at the border.
type Grid struct {
	Width, Height int
	cells         [][]Cell // cells[row][col]
}

// NewGrid builds a width×height grid with every cell's current domain set
// to fullDomain and no cell collapsed.
func NewGrid(width, height int, fullDomain domain.Domain) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
		for col := range cells[row] {
			cells[row][col] = Cell{CurrentDomain: fullDomain}
		}
	}
	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// InBounds reports whether c addresses a live cell.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Cell returns a pointer to the cell at c for in-place mutation. The
// caller must have already checked InBounds; Cell panics on an out-of-range
// coordinate exactly as a slice index would, since every internal caller
// derives coordinates from Neighbours or a bounds-checked loop.
func (g *Grid) Cell(c Coord) *Cell {
	return &g.cells[c.Row][c.Col]
}

// Neighbours returns the in-bounds neighbours of c, in the fixed order
// Top, Left, Bottom, Right. An edge or corner cell yields fewer than four.
func (g *Grid) Neighbours(c Coord) []DirCoord {
	candidates := [4]DirCoord{
		{Top, Coord{c.Row - 1, c.Col}},
		{Left, Coord{c.Row, c.Col - 1}},
		{Bottom, Coord{c.Row + 1, c.Col}},
		{Right, Coord{c.Row, c.Col + 1}},
	}
	out := make([]DirCoord, 0, 4)
	for _, dc := range candidates {
		if g.InBounds(dc.Coord) {
			out = append(out, dc)
		}
	}
	return out
}

// Each calls fn for every coordinate in the grid in row-major order.
func (g *Grid) Each(fn func(Coord, *Cell)) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := Coord{row, col}
			fn(c, g.Cell(c))
		}
	}
}
