// Package mapstore persists finished maps to a local SQLite database, one
// row per solve, keyed by a run ID. It never touches a grid mid-solve: a
// Store only ever receives a grid the caller has already drained to
// completion (or given up on), matching the core's no-partial-persistence
// rule.
package mapstore
