package atlas

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/events"
	"github.com/katalvlaran/tessellate/solver"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// Map is one fully drained solver run: the final grid state and the full
// sequence of VisualEvents it produced, kept for replay or inspection. A Map
// is only ever constructed after its solver has been drained to exhaustion,
// so Grid always reflects a terminal state (solved or given up), never a
// partial one.
type Map struct {
	Index  int
	Seed   int64
	Grid   *tilegrid.Grid
	Events []events.VisualEvent
}

// Atlas owns a base seed, grid dimensions, and a tile constraint table
// shared by every map it generates, and lazily generates and caches an
// independently-seeded solver run per integer index on first access.
type Atlas struct {
	seed        int64
	width       int
	height      int
	fullDomain  domain.Domain
	constraints *tilegrid.ConstraintTable

	mu   sync.RWMutex
	maps map[int]*Map
}

// New builds an Atlas that generates width×height grids over fullDomain and
// constraints, deriving each map's seed from base.
func New(base int64, width, height int, fullDomain domain.Domain, constraints *tilegrid.ConstraintTable) *Atlas {
	return &Atlas{
		seed:        base,
		width:       width,
		height:      height,
		fullDomain:  fullDomain,
		constraints: constraints,
		maps:        make(map[int]*Map),
	}
}

// Get returns the map at index, generating and caching it if this is the
// first request for that index.
func (a *Atlas) Get(index int) (*Map, error) {
	if index < 0 {
		return nil, ErrInvalidIndex
	}

	a.mu.RLock()
	m, exists := a.maps[index]
	a.mu.RUnlock()
	if exists {
		return m, nil
	}

	return a.generate(index)
}

// GetIfExists returns the map at index only if it has already been
// generated, without triggering generation.
func (a *Atlas) GetIfExists(index int) *Map {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.maps[index]
}

// HasMap reports whether index has already been generated.
func (a *Atlas) HasMap(index int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, exists := a.maps[index]
	return exists
}

// MapCount returns the number of maps generated so far.
func (a *Atlas) MapCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.maps)
}

// generate drives a fresh solver for index to exhaustion and caches the
// result. The lock is held only around the cache check-and-insert, not
// around the drive itself: two concurrent first-requests for the same index
// may both generate, with the loser's result discarded, trading a rare
// duplicated generation for never holding the lock across a potentially
// slow solve.
func (a *Atlas) generate(index int) (*Map, error) {
	seed := seedFor(a.seed, index)
	s, err := solver.New(a.width, a.height, a.fullDomain, a.constraints, seed)
	if err != nil {
		return nil, fmt.Errorf("atlas: map %d: %w", index, err)
	}

	var drained []events.VisualEvent
	for {
		e, ok := s.Next()
		if !ok {
			break
		}
		drained = append(drained, e)
	}

	m := &Map{Index: index, Seed: seed, Grid: s.Grid(), Events: drained}

	a.mu.Lock()
	if existing, exists := a.maps[index]; exists {
		a.mu.Unlock()
		return existing, nil
	}
	a.maps[index] = m
	a.mu.Unlock()

	return m, nil
}

// seedFor derives map index's seed from the atlas's base seed. The
// multiplier keeps adjacent indices from producing adjacent seeds, the way
// the teacher separated floor RNG streams from the base tower seed.
func seedFor(base int64, index int) int64 {
	return base + int64(index)*1000003
}
