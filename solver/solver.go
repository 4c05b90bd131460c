package solver

import (
	"math/rand"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/entropyqueue"
	"github.com/katalvlaran/tessellate/events"
	"github.com/katalvlaran/tessellate/history"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// Solver owns a tilegrid.Grid together with the entropy queue, history log,
// and visual-event timeline that drive it to a solution (or a logged
// give-up) one VisualEvent at a time. A Solver is single-threaded: every
// method must be called from the same goroutine, and none of it is safe for
// concurrent use.
type Solver struct {
	grid        *tilegrid.Grid
	constraints *tilegrid.ConstraintTable
	queue       *entropyqueue.Queue
	log         *history.Log
	timeline    *events.Timeline
	rng         *rand.Rand

	done bool
}

// New builds a Solver over a width×height grid where every cell starts with
// fullDomain as its current domain, ready to collapse under constraints. It
// returns ErrNoTileTypes if fullDomain is empty. seed fixes the PRNG driving
// every random tile choice, so two Solvers built with the same seed, grid
// size, and constraint table replay an identical visual event sequence.
func New(width, height int, fullDomain domain.Domain, constraints *tilegrid.ConstraintTable, seed int64) (*Solver, error) {
	if fullDomain.IsEmpty() {
		return nil, ErrNoTileTypes
	}
	grid, err := tilegrid.NewGrid(width, height, fullDomain)
	if err != nil {
		return nil, err
	}

	maxEntropy := fullDomain.Entropy()
	queue := entropyqueue.New(maxEntropy)
	grid.Each(func(c tilegrid.Coord, cell *tilegrid.Cell) {
		// NewGrid guarantees every cell starts at entropy == maxEntropy and
		// every coord is distinct, so this insert can never fail.
		_ = queue.Insert(c, cell.Entropy())
	})

	return &Solver{
		grid:        grid,
		constraints: constraints,
		queue:       queue,
		log:         history.New(),
		timeline:    events.NewTimeline(),
		rng:         rand.New(rand.NewSource(seed)),
	}, nil
}

// Grid returns the solver's current grid state for direct inspection or
// dumping. The returned pointer aliases the solver's own grid; callers must
// not mutate it.
func (s *Solver) Grid() *tilegrid.Grid {
	return s.grid
}

// Next returns the next pending VisualEvent, driving the solver forward by
// one explicit collapse-and-propagation step (and however much backtracking
// that step requires) if the timeline is currently empty. It returns false
// exactly when the grid is fully determined or the solver has given up;
// callers must stop pulling once it does.
func (s *Solver) Next() (events.VisualEvent, bool) {
	if e, ok := s.timeline.PopFront(); ok {
		return e, true
	}
	if s.done {
		return nil, false
	}
	if _, ok := s.queue.PeekMin(); !ok {
		s.done = true
		return nil, false
	}

	if err := s.collapse(); err != nil {
		// Give up: no viable earlier decision remains. Any events the
		// failed attempt already pushed (e.g. a collapse later undone by
		// exhausting its own alternatives) are still genuine and must
		// drain before the iterator ends.
		s.done = true
	}
	return s.timeline.PopFront()
}

// collapse runs one full collapse-propagate-backtrack cycle, per the loop in
// the package's design: extract the minimum-entropy cell, collapse it,
// propagate the consequence, and on contradiction rewind to the last
// explicit collapse (re-targeting earlier ones as needed) before retrying.
func (s *Solver) collapse() error {
	for {
		coord, _, ok := s.queue.ExtractMin()
		if !ok {
			return ErrUnsolvable
		}

		cell := s.grid.Cell(coord)
		priorDomain := cell.CurrentDomain
		tileType, ok := priorDomain.RandomMember(s.rng)
		if !ok {
			return ErrUnsolvable
		}
		removed := domain.FromList([]domain.TileType{tileType}).Xor(priorDomain)
		cell.Collapsed = true
		cell.TileType = tileType
		cell.CurrentDomain = domain.FromList([]domain.TileType{tileType})

		s.timeline.Push(events.SetTile{Coord: coord, TileType: tileType})
		s.log.Append(history.Collapse{Kind: history.Explicit, Coord: coord, TileType: tileType, Removed: removed})

		stack := []tilegrid.Coord{coord}
		err := s.propagate(coord, tileType, stack)
		if err == nil {
			return nil
		}
		if _, isContradiction := err.(*contradiction); !isContradiction {
			// Missing constraint data for an encountered tile type is a
			// fatal data error, not a contradiction backtracking can fix.
			return err
		}

		targetLen, ok := s.lastExplicitTargetLen()
		if !ok {
			return ErrUnsolvable
		}
		for {
			err := s.backtrack(targetLen)
			if err == nil {
				break
			}
			c, isContradiction := err.(*contradiction)
			if !isContradiction || c.kind != exhaustedPaths {
				return err
			}
			targetLen, ok = s.lastExplicitTargetLen()
			if !ok {
				return ErrUnsolvable
			}
		}
	}
}

// lastExplicitTargetLen returns the history length backtrack should rewind
// to: one past the most recent explicit collapse, so that collapse itself
// is the boundary entry backtrack pops and inverts with forbidding.
func (s *Solver) lastExplicitTargetLen() (int, bool) {
	idx, ok := s.log.LastExplicitIndex()
	if !ok {
		return 0, false
	}
	return idx + 1, true
}

// propagate drains stack depth-first, constraining each neighbour of the
// popped coord in turn. Neighbours are visited in tilegrid's fixed
// Top, Left, Bottom, Right order via Grid.Neighbours. originCoord and
// originType name the explicit collapse that triggered this propagation
// wave, carried through only for contradiction diagnostics.
func (s *Solver) propagate(originCoord tilegrid.Coord, originType domain.TileType, stack []tilegrid.Coord) error {
	for len(stack) > 0 {
		changedCoord := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		changed := s.grid.Cell(changedCoord)

		for _, nb := range s.grid.Neighbours(changedCoord) {
			allowed := domain.Empty()
			for _, t := range changed.CurrentDomain.Members() {
				supported, ok := s.constraints.Supports(t, nb.Dir)
				if !ok {
					return tilegrid.ErrMissingConstraint
				}
				allowed = allowed.Union(supported)
			}

			neighbour := s.grid.Cell(nb.Coord)
			if neighbour.Collapsed {
				continue
			}

			prior := neighbour.CurrentDomain
			removed := prior.Difference(allowed)
			if removed.IsEmpty() {
				continue
			}

			neighbour.CurrentDomain = prior.Intersect(allowed)
			stack = append(stack, nb.Coord)

			if neighbour.CurrentDomain.IsEmpty() {
				s.log.Append(history.DomainReduction{Coord: nb.Coord, Removed: removed, CurrentEntropy: prior.Entropy()})
				return &contradiction{kind: emptyDomain, coord: originCoord, tileType: originType}
			}

			newEntropy := neighbour.CurrentDomain.Entropy()
			// The cell is still in the queue: it can only have left via an
			// implicit collapse, which this same reduction would have just
			// caused, never before it.
			_ = s.queue.UpdateEntropy(nb.Coord, newEntropy)
			s.log.Append(history.DomainReduction{Coord: nb.Coord, Removed: removed, CurrentEntropy: newEntropy})

			if newEntropy == 1 {
				u, _ := neighbour.CurrentDomain.AsSingle()
				neighbour.Collapsed = true
				neighbour.TileType = u
				_ = s.queue.Remove(nb.Coord)
				s.timeline.Push(events.SetTile{Coord: nb.Coord, TileType: u})
				s.log.Append(history.Collapse{Kind: history.Implicit, Coord: nb.Coord, TileType: u, Removed: removed})
			}
		}
	}
	return nil
}

// backtrack undoes history entries back to (and including) the boundary
// explicit collapse at index target_len-1, then forbids the tile type that
// triggered the contradiction at that cell. It returns a *contradiction with
// kind exhaustedPaths if forbidding the tile empties the cell's restored
// domain; the caller re-targets an earlier explicit collapse.
func (s *Solver) backtrack(targetLen int) error {
	for s.log.Len() > targetLen {
		action, _ := s.log.PopLast()
		switch a := action.(type) {
		case history.DomainReduction:
			cell := s.grid.Cell(a.Coord)
			cell.CurrentDomain = cell.CurrentDomain.Union(a.Removed)
			_ = s.queue.UpdateEntropy(a.Coord, cell.CurrentDomain.Entropy())
		case history.Collapse:
			cell := s.grid.Cell(a.Coord)
			cell.Collapsed = false
			cell.CurrentDomain = cell.CurrentDomain.Union(a.Removed)
			_ = s.queue.Insert(a.Coord, cell.CurrentDomain.Entropy())
			s.timeline.Push(events.UndoTile{Coord: a.Coord})
		}
	}

	action, ok := s.log.PopLast()
	if !ok {
		return ErrUnsolvable
	}
	boundary, ok := action.(history.Collapse)
	if !ok {
		return ErrUnsolvable
	}

	cell := s.grid.Cell(boundary.Coord)
	cell.Collapsed = false
	cell.CurrentDomain = cell.CurrentDomain.Union(boundary.Removed).Remove(boundary.TileType)

	if cell.CurrentDomain.IsEmpty() {
		return &contradiction{kind: exhaustedPaths, coord: boundary.Coord, tileType: boundary.TileType}
	}

	_ = s.queue.Insert(boundary.Coord, cell.CurrentDomain.Entropy())
	s.timeline.Push(events.UndoTile{Coord: boundary.Coord})
	return nil
}
