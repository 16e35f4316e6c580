// Package oracle provides an independently-written, unoptimized baseline
// pathfinder used only by the jps package's test suite to check Jump Point
// Search for admissibility: that Compute returns a path whose length in
// tiles equals the optimal octile path length.
//
// What & why:
//
//   - ShortestPathLength runs a plain breadth-first search over the same
//     eight-connected adjacency JPS explores, expanding every neighbor of
//     every node, without any of JPS's jump-point pruning.
//   - On a uniform-cost eight-connected grid, a diagonal step strictly
//     dominates two cardinal steps (it is never worse and frequently
//     better), so the path that minimizes hop count is always an optimal
//     octile-cost path; minimizing hop count is exactly "path length in
//     tiles." That lets this oracle stay a plain unweighted BFS rather
//     than a weighted Dijkstra carrying float64 costs, while still
//     answering the same question an admissibility check needs.
//
// The search is an index-based, bitmap-adjacency BFS (queue of int
// indices, []bool visited, neighbor offsets precomputed once) that stops
// as soon as it reaches the one target.
//
// This is test-only scaffolding: it has no place in the jps package's
// production search path, but an independent baseline is exactly what lets
// the test suite hold JPS to a real admissibility check rather than just
// checking it against itself, so it lives here as an ordinary
// (non-internal) package the jps test suite imports.
package oracle
