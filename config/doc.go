// Package config loads this module's YAML configuration: grid dimensions
// and seed, where to find the tile data file, where to persist solved
// maps, how (and whether) to broadcast visual events over a websocket, and
// logging. It follows the same load-with-defaults shape used throughout
// this codebase: a missing file is not an error, and any field the file
// omits keeps its default value.
package config
