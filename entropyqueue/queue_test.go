package entropyqueue

import (
	"testing"

	"github.com/katalvlaran/tessellate/tilegrid"
)

func TestInsertAndExtractMin(t *testing.T) {
	q := New(10)
	mustInsert(t, q, tilegrid.Coord{Row: 0, Col: 0}, 5)
	mustInsert(t, q, tilegrid.Coord{Row: 1, Col: 1}, 3)
	mustInsert(t, q, tilegrid.Coord{Row: 2, Col: 2}, 7)

	coord, entropy, ok := q.ExtractMin()
	if !ok || entropy != 3 || coord != (tilegrid.Coord{Row: 1, Col: 1}) {
		t.Fatalf("ExtractMin = %v, %d, %v; want {1 1}, 3, true", coord, entropy, ok)
	}

	coord, entropy, ok = q.ExtractMin()
	if !ok || entropy != 5 || coord != (tilegrid.Coord{Row: 0, Col: 0}) {
		t.Fatalf("ExtractMin = %v, %d, %v; want {0 0}, 5, true", coord, entropy, ok)
	}
}

func TestUpdateEntropy(t *testing.T) {
	q := New(15)
	mustInsert(t, q, tilegrid.Coord{Row: 0, Col: 0}, 5)
	mustInsert(t, q, tilegrid.Coord{Row: 1, Col: 1}, 8)
	mustInsert(t, q, tilegrid.Coord{Row: 2, Col: 2}, 14)

	if err := q.UpdateEntropy(tilegrid.Coord{Row: 1, Col: 1}, 2); err != nil {
		t.Fatalf("UpdateEntropy: %v", err)
	}

	coord, entropy, ok := q.ExtractMin()
	if !ok || entropy != 2 || coord != (tilegrid.Coord{Row: 1, Col: 1}) {
		t.Fatalf("ExtractMin after update = %v, %d, %v; want {1 1}, 2, true", coord, entropy, ok)
	}
}

func TestExtractMinEmpty(t *testing.T) {
	q := New(10)
	if _, _, ok := q.ExtractMin(); ok {
		t.Fatalf("expected ExtractMin on empty queue to return false")
	}
	mustInsert(t, q, tilegrid.Coord{Row: 0, Col: 0}, 5)
	q.ExtractMin()
	if _, _, ok := q.ExtractMin(); ok {
		t.Fatalf("expected ExtractMin on drained queue to return false")
	}
}

func TestZeroEntropyRejected(t *testing.T) {
	q := New(10)
	if err := q.Insert(tilegrid.Coord{Row: 0, Col: 0}, 0); err != ErrZeroEntropy {
		t.Fatalf("Insert at entropy 0: err = %v, want ErrZeroEntropy", err)
	}
}

func TestEntropyOutOfRangeRejected(t *testing.T) {
	q := New(5)
	if err := q.Insert(tilegrid.Coord{Row: 0, Col: 0}, 10); err != ErrEntropyOutOfRange {
		t.Fatalf("Insert at entropy 10 (max 5): err = %v, want ErrEntropyOutOfRange", err)
	}
}

func TestUpdateAbsentCoordRejected(t *testing.T) {
	q := New(10)
	if err := q.UpdateEntropy(tilegrid.Coord{Row: 0, Col: 0}, 5); err != ErrNotPresent {
		t.Fatalf("UpdateEntropy on absent coord: err = %v, want ErrNotPresent", err)
	}
}

func TestPeekMinDoesNotRemove(t *testing.T) {
	q := New(10)
	if _, ok := q.PeekMin(); ok {
		t.Fatalf("expected PeekMin on empty queue to return false")
	}
	mustInsert(t, q, tilegrid.Coord{Row: 0, Col: 0}, 5)
	mustInsert(t, q, tilegrid.Coord{Row: 1, Col: 1}, 3)

	first, ok := q.PeekMin()
	if !ok || first != (tilegrid.Coord{Row: 1, Col: 1}) {
		t.Fatalf("PeekMin = %v, %v; want {1 1}, true", first, ok)
	}
	second, ok := q.PeekMin()
	if !ok || second != first {
		t.Fatalf("PeekMin should be idempotent; got %v then %v", first, second)
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (PeekMin must not remove)", q.Len())
	}
}

func TestInsertAlreadyPresentRejected(t *testing.T) {
	q := New(10)
	c := tilegrid.Coord{Row: 0, Col: 0}
	mustInsert(t, q, c, 3)
	if err := q.Insert(c, 4); err != ErrAlreadyPresent {
		t.Fatalf("re-insert: err = %v, want ErrAlreadyPresent", err)
	}
}

func mustInsert(t *testing.T, q *Queue, c tilegrid.Coord, entropy int) {
	t.Helper()
	if err := q.Insert(c, entropy); err != nil {
		t.Fatalf("Insert(%v, %d): %v", c, entropy, err)
	}
}
