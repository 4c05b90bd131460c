// Package events defines the VisualEvent timeline the solver emits: one
// SetTile or UndoTile per state change a consumer should reflect visually,
// in the exact order those changes happened.
package events
