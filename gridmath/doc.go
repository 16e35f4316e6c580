// Package gridmath provides the coordinate and direction algebra that the
// jps search engine builds on: linear-index/coordinate conversion, bounds
// and passability checks, eight-direction unit steps, and the
// forced-neighbor predicate that lets Jump Point Search prune symmetric
// expansions.
//
// What:
//
//   - ToIndex/ToCoord convert between a row-major linear index
//     (x + y*w) and (x,y).
//   - Direction is an int in {0..7} for the eight compass directions in
//     fixed order N,NE,E,SE,S,SW,W,NW; Step advances one cell in a given
//     direction, tolerating direction inputs outside {0..7} (used
//     transiently by the forced-neighbor check) via floor/Euclidean modulo
//     rather than Go's sign-preserving %.
//   - HasForcedNeighbours implements the cardinal/diagonal forced-neighbor
//     predicate JPS needs to know when a straight or diagonal run must stop
//     and become a jump point.
//
// Why:
//
//   - JPS correctness depends on exact direction bookkeeping: an off-by-one
//     in the modulo arithmetic of Step or isOptimalTurn (in the jps package)
//     silently breaks pruning and can miss optimal paths.
//
// Complexity: every exported function here is O(1).
package gridmath
