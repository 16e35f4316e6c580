package jps

import "github.com/waypath/jps/gridmath"

// Status tags the outcome of a Compute call with an explicit tri-state
// result, rather than overloading a nil path to mean both "invalid
// arguments" and "no path exists."
type Status int

const (
	// StatusOK indicates a path was found; Result.Path and Result.Length
	// are populated.
	StatusOK Status = iota
	// StatusNoPath indicates the open set emptied without reaching goal.
	// Result.Path is nil and Result.Length is 0.
	StatusNoPath
	// StatusInvalidArgs indicates start or goal was outside [0, W*H) or out
	// of bounds. Result.Path is nil and Result.Length is -1.
	StatusInvalidArgs
)

// Result is the outcome of a Compute call.
//
// Path holds node indices from the tile immediately after start through
// goal, goal-first (Path[0] == goal), with start itself excluded. Length is
// len(Path) on StatusOK, 0 on StatusNoPath, and -1 on StatusInvalidArgs.
type Result struct {
	Path   []int
	Length int
	Status Status
}

// Heuristic selects the admissible estimate used to order the open set.
// Both options are admissible and consistent for an eight-connected,
// uniform-cost grid; Octile is strictly tighter and never changes the
// optimality of the result, only the number of nodes expanded to find it.
type Heuristic int

const (
	// ChebyshevHeuristic estimates max(|dx|, |dy|): the default, matching
	// the connectivity of the grid exactly.
	ChebyshevHeuristic Heuristic = iota
	// OctileHeuristic estimates max(d) + (√2-1)·min(d), a tighter bound
	// that never overestimates the true octile cost.
	OctileHeuristic
)

// Options configures a Searcher. Use DefaultOptions or the With* functional
// options below.
type Options struct {
	Heuristic Heuristic
}

// Option configures Options.
type Option func(*Options)

// WithHeuristic selects the admissible estimate used to order the open set.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// DefaultOptions returns the default configuration: ChebyshevHeuristic.
func DefaultOptions() Options {
	return Options{Heuristic: ChebyshevHeuristic}
}

// ToIndex maps (x,y) on a grid of width w to its row-major linear index.
// Re-exported from gridmath for callers who prefer coordinate input.
func ToIndex(w, x, y int) int { return gridmath.ToIndex(w, x, y) }

// ToCoord maps a row-major linear index back to (x,y) on a grid of width w.
// Re-exported from gridmath for callers who prefer coordinate input.
func ToCoord(w, i int) (x, y int) { return gridmath.ToCoord(w, i) }
