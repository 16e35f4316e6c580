// Package jps computes shortest paths on a uniform-cost, eight-connected 2D
// grid using Jump Point Search (JPS), an A*-family algorithm that exploits
// grid symmetry to prune redundant node expansions.
//
// What & why:
//
//   - Given a rectangular passability bitmap, a start cell, and a goal
//     cell, JPS produces the sequence of tiles on an optimal (octile-cost)
//     path, or reports that none exists — without enqueueing every
//     neighbor of every expanded node the way plain A* does.
//   - Straight and diagonal runs are collapsed into single "jumps"; only
//     cells with forced neighbors, diagonal cells whose straight probes
//     find a jump point, and the goal itself become recorded jump points;
//     a run that ends at an obstacle or the grid edge records nothing. The interior tiles of each run are regenerated during
//     path reconstruction, never stored in the open set.
//
// Subpackages, leaves first:
//
//	ipq/      — indexed binary min-heap priority queue with O(log n)
//	            decrease-key via a position-index side table.
//	gridmath/ — coordinate<->index conversion, bounds/passability checks,
//	            eight-direction unit steps, and the forced-neighbor
//	            predicate.
//	jps/      — the search engine itself (jump routine, optimal-turn
//	            filter, main loop, path reconstruction) and the public
//	            Compute/ToIndex/ToCoord surface.
//	oracle/   — an independent brute-force BFS baseline used only by the
//	            jps package's tests to check admissibility.
//
// Out of scope: command-line argument parsing, benchmark scenario file
// parsing, AIIDE .map file parsing, result printing, and regression
// comparison tooling against a slower baseline — all external collaborators
// that consume this module's Compute function rather than living inside it.
//
// Non-goals: non-uniform edge costs, weighted terrain, dynamic obstacles,
// any-angle smoothing beyond octile diagonals, multi-threaded search,
// bidirectional search, incremental replanning.
//
//	go get github.com/waypath/jps/jps
package jps
