package history

// Log is an append-only ordered sequence of Actions.
type Log struct {
	entries []Action
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Append adds a to the end of the log.
func (l *Log) Append(a Action) {
	l.entries = append(l.entries, a)
}

// PopLast removes and returns the most recently appended Action, or false
// if the log is empty.
func (l *Log) PopLast() (Action, bool) {
	if len(l.entries) == 0 {
		return nil, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return last, true
}

// Len returns the number of entries currently in the log.
func (l *Log) Len() int {
	return len(l.entries)
}

// LastExplicitIndex reverse-scans for the most recent Collapse with
// Kind == Explicit and returns its index, or false if none exists.
func (l *Log) LastExplicitIndex() (int, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if c, ok := l.entries[i].(Collapse); ok && c.Kind == Explicit {
			return i, true
		}
	}
	return 0, false
}
