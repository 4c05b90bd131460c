package atlas

import (
	"testing"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/tilegrid"
)

const (
	tileA domain.TileType = iota
	tileB
)

func forcedPairTable() (domain.Domain, *tilegrid.ConstraintTable) {
	full := domain.FromList([]domain.TileType{tileA, tileB})
	ct := tilegrid.NewConstraintTable()
	for _, t := range []domain.TileType{tileA, tileB} {
		for _, d := range []tilegrid.Direction{tilegrid.Top, tilegrid.Left, tilegrid.Bottom, tilegrid.Right} {
			ct.Set(t, d, full)
		}
	}
	ct.Set(tileA, tilegrid.Right, domain.FromList([]domain.TileType{tileB}))
	ct.Set(tileB, tilegrid.Left, domain.FromList([]domain.TileType{tileA}))
	return full, ct
}

func TestAtlasGetGeneratesAndCaches(t *testing.T) {
	full, ct := forcedPairTable()
	a := New(1, 2, 1, full, ct)

	if a.HasMap(0) {
		t.Fatalf("expected map 0 not yet generated")
	}

	m1, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if !a.HasMap(0) {
		t.Fatalf("expected map 0 cached after Get")
	}
	if a.MapCount() != 1 {
		t.Fatalf("MapCount() = %d, want 1", a.MapCount())
	}

	m2, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0) second call error: %v", err)
	}
	if m1 != m2 {
		t.Fatalf("expected cached map to be returned on second Get, got distinct pointers")
	}
}

func TestAtlasDifferentIndicesDifferentSeeds(t *testing.T) {
	full, ct := forcedPairTable()
	a := New(1, 2, 1, full, ct)

	m0, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	m1, err := a.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error: %v", err)
	}
	if m0.Seed == m1.Seed {
		t.Fatalf("expected distinct seeds, both got %d", m0.Seed)
	}
}

func TestAtlasGeneratedMapIsFullyDrained(t *testing.T) {
	full, ct := forcedPairTable()
	a := New(5, 2, 1, full, ct)

	m, err := a.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	allCollapsed := true
	m.Grid.Each(func(_ tilegrid.Coord, cell *tilegrid.Cell) {
		if !cell.Collapsed {
			allCollapsed = false
		}
	})
	if !allCollapsed {
		t.Fatalf("expected a fully solved, fully drained map")
	}
	if len(m.Events) == 0 {
		t.Fatalf("expected a non-empty recorded event history")
	}
}

func TestAtlasInvalidIndex(t *testing.T) {
	full, ct := forcedPairTable()
	a := New(1, 2, 1, full, ct)

	if _, err := a.Get(-1); err != ErrInvalidIndex {
		t.Fatalf("Get(-1) error = %v, want ErrInvalidIndex", err)
	}
}

func TestAtlasGetIfExists(t *testing.T) {
	full, ct := forcedPairTable()
	a := New(1, 2, 1, full, ct)

	if a.GetIfExists(0) != nil {
		t.Fatalf("expected nil before generation")
	}
	if _, err := a.Get(0); err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if a.GetIfExists(0) == nil {
		t.Fatalf("expected non-nil after generation")
	}
}
