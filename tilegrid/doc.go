// Package tilegrid defines the rectangular grid of Cells the solver
// collapses, and the per-direction adjacency constraint table that governs
// which TileType may sit next to which.
//
// Coordinates are clipped at the border: Grid never wraps around, and a
// cell on an edge or corner simply has fewer than four neighbours.
// Neighbours are always visited in the fixed order Top, Left, Bottom,
// Right — the solver's propagation order (and therefore its history and
// visual-event order) depends on this and must not change.
package tilegrid
