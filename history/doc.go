// Package history implements the solver's append-only action log: the
// record of reversible steps (explicit collapse, implicit collapse, domain
// reduction) that backtracking rewinds when propagation hits a
// contradiction.
//
// The log never compacts during solving; entries are only ever appended or
// popped from the end, keeping memory proportional to the current search
// path rather than to the whole search tree.
package history
