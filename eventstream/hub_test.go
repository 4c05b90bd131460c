package eventstream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/tessellate/domain"
	"github.com/katalvlaran/tessellate/events"
	"github.com/katalvlaran/tessellate/solver"
	"github.com/katalvlaran/tessellate/tilegrid"
)

const (
	tileA domain.TileType = iota
	tileB
)

func names(t domain.TileType) string {
	switch t {
	case tileA:
		return "a"
	case tileB:
		return "b"
	default:
		return ""
	}
}

func forcedPairSolver(t *testing.T) *solver.Solver {
	t.Helper()
	full := domain.FromList([]domain.TileType{tileA, tileB})
	ct := tilegrid.NewConstraintTable()
	for _, tt := range []domain.TileType{tileA, tileB} {
		for _, d := range []tilegrid.Direction{tilegrid.Top, tilegrid.Left, tilegrid.Bottom, tilegrid.Right} {
			ct.Set(tt, d, full)
		}
	}
	ct.Set(tileA, tilegrid.Right, domain.FromList([]domain.TileType{tileB}))
	ct.Set(tileB, tilegrid.Left, domain.FromList([]domain.TileType{tileA}))

	s, err := solver.New(2, 1, full, ct, 1)
	if err != nil {
		t.Fatalf("solver.New() error: %v", err)
	}
	return s
}

func TestFrameForSetTile(t *testing.T) {
	f, err := frameFor(events.SetTile{Coord: tilegrid.Coord{Row: 1, Col: 2}, TileType: tileA}, names)
	if err != nil {
		t.Fatalf("frameFor() error: %v", err)
	}
	if f.Type != "set" || f.Row != 1 || f.Col != 2 || f.Tile != "a" {
		t.Fatalf("unexpected frame: %+v", f)
	}
}

func TestFrameForUndoTile(t *testing.T) {
	f, err := frameFor(events.UndoTile{Coord: tilegrid.Coord{Row: 3, Col: 4}}, names)
	if err != nil {
		t.Fatalf("frameFor() error: %v", err)
	}
	if f.Type != "undo" || f.Row != 3 || f.Col != 4 || f.Tile != "" {
		t.Fatalf("unexpected frame: %+v", f)
	}
}

func TestHubBroadcastsToSubscriber(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeHTTP))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer conn.Close()

	// Give the server a moment to register the subscriber before draining.
	deadline := time.Now().Add(time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(time.Millisecond)
	}

	s := forcedPairSolver(t)
	hub.Drain(s, names)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error: %v", err)
	}
	if !strings.Contains(string(msg), `"type":"set"`) {
		t.Fatalf("unexpected first frame: %s", msg)
	}
}

func TestHubDropsFullSubscriberWithoutBlocking(t *testing.T) {
	hub := NewHub()
	sub := &subscriber{send: make(chan []byte, 1)}
	hub.subscribers[sub] = struct{}{}

	hub.broadcast([]byte("one"))
	hub.broadcast([]byte("two"))

	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected overflowing subscriber to be dropped")
	}
}
