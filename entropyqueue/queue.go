package entropyqueue

import "github.com/katalvlaran/tessellate/tilegrid"

// Queue is a bucket-array priority structure mapping tilegrid.Coord to an
// integer entropy in [1, maxEntropy], supporting O(1) amortised insert,
// update, and remove. Finding the minimum scans up to maxEntropy buckets
// (maxEntropy is at most domain.MaxTileTypes) and then every coord in the
// lowest non-empty bucket, to pick the row-major smallest one.
//
// Each coord appears in at most one bucket at a time; the queue does not
// defend against re-inserting an already-present coord beyond returning
// ErrAlreadyPresent.
type Queue struct {
	maxEntropy int
	buckets    []map[tilegrid.Coord]struct{} // buckets[entropy-1]
	location   map[tilegrid.Coord]int        // coord -> bucket index (entropy-1)
}

// New returns an empty Queue accepting entropies in [1, maxEntropy].
func New(maxEntropy int) *Queue {
	buckets := make([]map[tilegrid.Coord]struct{}, maxEntropy)
	for i := range buckets {
		buckets[i] = make(map[tilegrid.Coord]struct{})
	}
	return &Queue{
		maxEntropy: maxEntropy,
		buckets:    buckets,
		location:   make(map[tilegrid.Coord]int),
	}
}

func (q *Queue) bucketIndex(entropy int) (int, error) {
	if entropy == 0 {
		return 0, ErrZeroEntropy
	}
	idx := entropy - 1
	if idx >= len(q.buckets) {
		return 0, ErrEntropyOutOfRange
	}
	return idx, nil
}

// Insert adds coord at the given entropy. It fails if entropy is 0 or
// exceeds the configured maximum, or if coord is already present at any
// entropy.
func (q *Queue) Insert(coord tilegrid.Coord, entropy int) error {
	idx, err := q.bucketIndex(entropy)
	if err != nil {
		return err
	}
	if _, exists := q.location[coord]; exists {
		return ErrAlreadyPresent
	}
	q.buckets[idx][coord] = struct{}{}
	q.location[coord] = idx
	return nil
}

// UpdateEntropy moves an already-present coord to the bucket for
// newEntropy. It fails if coord is absent or newEntropy is invalid.
func (q *Queue) UpdateEntropy(coord tilegrid.Coord, newEntropy int) error {
	oldIdx, exists := q.location[coord]
	if !exists {
		return ErrNotPresent
	}
	newIdx, err := q.bucketIndex(newEntropy)
	if err != nil {
		return err
	}
	delete(q.buckets[oldIdx], coord)
	q.buckets[newIdx][coord] = struct{}{}
	q.location[coord] = newIdx
	return nil
}

// Remove drops coord from the queue. It fails if coord is absent.
func (q *Queue) Remove(coord tilegrid.Coord) error {
	idx, exists := q.location[coord]
	if !exists {
		return ErrNotPresent
	}
	delete(q.buckets[idx], coord)
	delete(q.location, coord)
	return nil
}

// PeekMin returns the row-major smallest coord (lowest Row, then lowest
// Col) from the lowest non-empty bucket without removing it, or false if
// the queue is empty.
func (q *Queue) PeekMin() (tilegrid.Coord, bool) {
	for _, bucket := range q.buckets {
		found := false
		var best tilegrid.Coord
		for coord := range bucket {
			if !found || coord.Row < best.Row || (coord.Row == best.Row && coord.Col < best.Col) {
				best, found = coord, true
			}
		}
		if found {
			return best, true
		}
	}
	return tilegrid.Coord{}, false
}

// ExtractMin behaves like PeekMin but also removes the returned coord,
// and additionally returns its entropy.
func (q *Queue) ExtractMin() (tilegrid.Coord, int, bool) {
	coord, ok := q.PeekMin()
	if !ok {
		return tilegrid.Coord{}, 0, false
	}
	idx := q.location[coord]
	delete(q.buckets[idx], coord)
	delete(q.location, coord)
	return coord, idx + 1, true
}

// Len returns the number of coords currently tracked by the queue.
func (q *Queue) Len() int {
	return len(q.location)
}
