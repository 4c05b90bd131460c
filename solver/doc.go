// Package solver drives the pick-collapse-propagate-backtrack loop over a
// tilegrid.Grid: it selects the minimum-entropy cell via an
// entropyqueue.Queue, collapses it, propagates the consequences to
// neighbours, and on contradiction rewinds through a history.Log, forbidding
// the tile type that failed. Progress is exposed one events.VisualEvent at a
// time through Next, so a caller can drive the solve as far as it likes
// without the solver ever running ahead of its own history.
package solver
