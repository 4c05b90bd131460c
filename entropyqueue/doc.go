// Package entropyqueue implements the bucket queue the solver uses to find
// a minimum-entropy cell: an array of one set per possible entropy value,
// indexed 1..=maxEntropy, supporting insert, update, remove, and
// "peek/extract a coordinate from the lowest non-empty bucket".
//
// Ties within the minimum bucket are broken in row-major order (lowest Row,
// then lowest Col), independent of insertion order, so a solver driven by a
// fixed seed visits cells in the same order on every run.
package entropyqueue
