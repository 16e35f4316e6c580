// Package jps implements Jump Point Search (JPS), an A*-family shortest-path
// algorithm for uniform-cost, eight-connected 2D grids. JPS exploits the
// symmetry of grid maps to prune redundant node expansions: instead of
// enqueueing every neighbor of every expanded node, it recursively "jumps"
// along straight and diagonal rays and only records a successor where a
// forced neighbor or the goal demands a decision (a diagonal cell also
// counts when one of its straight probes finds such a point). A ray that
// ends at an obstacle or the grid edge records nothing.
//
// What:
//
//   - Compute(grid, w, h, start, goal) runs the search and returns a Result:
//     the tile sequence from just-after-start to goal (goal first, start
//     excluded), its length, and a Status distinguishing success, no-path,
//     and invalid-argument outcomes.
//   - NewSearcher(opts...) builds a reusable configuration (heuristic choice,
//     currently Chebyshev by default or Octile as a tighter alternative) for
//     callers who want to tune the search without changing Compute's
//     contract.
//   - ToIndex/ToCoord are re-exported from gridmath for callers who prefer
//     coordinate-based start/goal arguments over raw indices.
//
// Why a dedicated indexed priority queue:
//
//   - JPS relaxes already-open nodes constantly (a cheaper route to a jump
//     point already in the open set is common). That is a decrease-key
//     workload, which a plain container/heap cannot serve in O(log n)
//     without the position-index side table the ipq package provides.
//
// Complexity: O((V + E) log V) in the worst case over the jump-point graph,
// where V, E are far smaller than the full grid's node/edge count because
// of JPS pruning; O(W·H) additional memory for the search-state arrays.
//
// Concurrency: Compute is a synchronous, allocation-local pure function of
// its arguments. It never retains grid beyond the call and uses no
// package-level mutable state, so concurrent calls on disjoint inputs are
// safe.
package jps
