package eventstream

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/events"
	"github.com/katalvlaran/tessellate/solver"
)

// subscriberQueueDepth bounds how many frames a subscriber may lag behind
// before it is considered slow and dropped. Generous for a short JSON frame
// per event, but small enough that a stuck subscriber can't grow unbounded.
const subscriberQueueDepth = 256

// frame is the wire shape of one broadcast event.
type frame struct {
	Type string `json:"type"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Tile string `json:"tile,omitempty"`
}

func frameFor(e events.VisualEvent, nameOf func(domain.TileType) string) (frame, error) {
	switch ev := e.(type) {
	case events.SetTile:
		return frame{Type: "set", Row: ev.Coord.Row, Col: ev.Coord.Col, Tile: nameOf(ev.TileType)}, nil
	case events.UndoTile:
		return frame{Type: "undo", Row: ev.Coord.Row, Col: ev.Coord.Col}, nil
	default:
		return frame{}, ErrUnexpectedEvent
	}
}

// subscriber wraps one WebSocket connection with a buffered outbound queue.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub accepts WebSocket subscribers and fans a solver's VisualEvent
// timeline out to all of them as JSON frames. A Hub has no notion of a
// single solver: Drain may be called once per run, and subscribers that
// connect mid-drain simply start receiving from that point on.
type Hub struct {
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

// NewHub builds an empty Hub. The upgrader accepts any origin, matching a
// same-process renderer rather than a public-facing deployment.
func NewHub() *Hub {
	return &Hub{
		upgrader:    websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		subscribers: make(map[*subscriber]struct{}),
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and registers it
// as a subscriber until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, subscriberQueueDepth)}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	go h.writePump(sub)
	h.readUntilClosed(sub)
}

// writePump drains sub's outbound queue to its connection until the queue
// is closed.
func (h *Hub) writePump(sub *subscriber) {
	for msg := range sub.send {
		if err := sub.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	sub.conn.Close()
}

// readUntilClosed blocks on incoming reads purely to detect when the client
// disconnects; the stream is broadcast-only and every received message is
// discarded.
func (h *Hub) readUntilClosed(sub *subscriber) {
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(sub)
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.send)
	}
	h.mu.Unlock()
}

// SubscriberCount returns the number of currently connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// broadcast fans msg out to every current subscriber, dropping (and
// unregistering) any subscriber whose queue is already full rather than
// blocking the caller.
func (h *Hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- msg:
		default:
			delete(h.subscribers, sub)
			close(sub.send)
		}
	}
}

// BroadcastEvent encodes e as a JSON frame and fans it out to all current
// subscribers, non-blocking. nameOf resolves a tile type to the name
// subscribers should render.
func (h *Hub) BroadcastEvent(e events.VisualEvent, nameOf func(domain.TileType) string) {
	f, err := frameFor(e, nameOf)
	if err != nil {
		return
	}
	encoded, err := json.Marshal(f)
	if err != nil {
		return
	}
	h.broadcast(encoded)
}

// Drain pulls every VisualEvent from s until it is exhausted, broadcasting
// each as a JSON frame to all current subscribers. It runs on the caller's
// goroutine, the same one driving the solver, and never blocks on a slow or
// absent subscriber: broadcast is always non-blocking. nameOf resolves a
// tile type to the name subscribers should render.
func (h *Hub) Drain(s *solver.Solver, nameOf func(domain.TileType) string) {
	for {
		e, ok := s.Next()
		if !ok {
			return
		}
		h.BroadcastEvent(e, nameOf)
	}
}
