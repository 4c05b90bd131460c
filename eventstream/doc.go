// Package eventstream broadcasts a solver's VisualEvent timeline to any
// number of WebSocket subscribers as small JSON frames, the way the
// teacher's internal/server wrapped gorilla/websocket connections for its
// telnet-over-websocket bridge. Unlike that bridge, eventstream is
// fire-and-forget broadcast only: it never reads from a subscriber, and a
// slow or disconnected one is dropped rather than allowed to stall the
// solver's driving goroutine.
package eventstream
