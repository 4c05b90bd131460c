package eventstream

import "errors"

// ErrUnexpectedEvent is returned if a VisualEvent implementation other than
// events.SetTile or events.UndoTile reaches frameFor.
var ErrUnexpectedEvent = errors.New("eventstream: unrecognized visual event type")
