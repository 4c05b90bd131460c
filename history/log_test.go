package history

import (
	"testing"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/tilegrid"
)

func TestAppendPopLastOrder(t *testing.T) {
	l := New()
	a1 := Collapse{Kind: Explicit, Coord: tilegrid.Coord{Row: 0, Col: 0}, TileType: 1}
	a2 := DomainReduction{Coord: tilegrid.Coord{Row: 0, Col: 1}, Removed: domain.FromList([]domain.TileType{2})}
	l.Append(a1)
	l.Append(a2)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	got, ok := l.PopLast()
	if !ok || got != Action(a2) {
		t.Fatalf("PopLast() = %v, want %v", got, a2)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() after pop = %d, want 1", l.Len())
	}

	got, ok = l.PopLast()
	if !ok || got != Action(a1) {
		t.Fatalf("PopLast() = %v, want %v", got, a1)
	}
	if _, ok := l.PopLast(); ok {
		t.Fatalf("expected PopLast on empty log to return false")
	}
}

func TestLastExplicitIndex(t *testing.T) {
	l := New()
	if _, ok := l.LastExplicitIndex(); ok {
		t.Fatalf("expected no explicit collapse in empty log")
	}

	l.Append(Collapse{Kind: Explicit, Coord: tilegrid.Coord{Row: 0, Col: 0}, TileType: 0})
	l.Append(DomainReduction{Coord: tilegrid.Coord{Row: 0, Col: 1}})
	l.Append(Collapse{Kind: Implicit, Coord: tilegrid.Coord{Row: 0, Col: 1}, TileType: 1})

	idx, ok := l.LastExplicitIndex()
	if !ok || idx != 0 {
		t.Fatalf("LastExplicitIndex() = %d, %v; want 0, true", idx, ok)
	}

	l.Append(Collapse{Kind: Explicit, Coord: tilegrid.Coord{Row: 1, Col: 0}, TileType: 0})
	idx, ok = l.LastExplicitIndex()
	if !ok || idx != 3 {
		t.Fatalf("LastExplicitIndex() = %d, %v; want 3, true", idx, ok)
	}
}
