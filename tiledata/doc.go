// Package tiledata loads and validates the tile catalogue and adjacency
// rules that parameterize a solve: the JSON file naming every tile type and,
// for each one, which types may occupy its neighbour in each of the four
// cardinal directions. It translates that external format into the
// domain.Domain and tilegrid.ConstraintTable values the core operates on,
// and is the only package in this module allowed to fail a whole run over a
// malformed catalogue rather than a single contradiction.
package tiledata
