package events

import (
	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// VisualEvent is one state change a consumer should reflect: a cell was
// set to a tile type, or a previously-set cell was undone by backtracking.
type VisualEvent interface {
	isVisualEvent()
}

// SetTile announces that Coord now holds TileType (either an explicit or
// an implicit collapse).
type SetTile struct {
	Coord    tilegrid.Coord
	TileType domain.TileType
}

func (SetTile) isVisualEvent() {}

// UndoTile announces that Coord's previously-set tile has been reverted by
// backtracking and should be shown as unset again.
type UndoTile struct {
	Coord tilegrid.Coord
}

func (UndoTile) isVisualEvent() {}

// Timeline is a FIFO queue of pending VisualEvents. It follows the same
// slice-with-buffered-backlog shape used elsewhere in this codebase for
// small in-process queues: appends grow the slice, PopFront reslices off
// the head rather than shifting elements down.
type Timeline struct {
	pending []VisualEvent
}

// NewTimeline returns an empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Push appends e to the back of the timeline.
func (t *Timeline) Push(e VisualEvent) {
	t.pending = append(t.pending, e)
}

// PopFront removes and returns the event at the front of the timeline, or
// false if it is empty.
func (t *Timeline) PopFront() (VisualEvent, bool) {
	if len(t.pending) == 0 {
		return nil, false
	}
	e := t.pending[0]
	t.pending = t.pending[1:]
	return e, true
}

// Empty reports whether the timeline has no pending events.
func (t *Timeline) Empty() bool {
	return len(t.pending) == 0
}
