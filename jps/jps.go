// Package jps: main search loop.
package jps

import (
	"github.com/waypath/jps/gridmath"
	"github.com/waypath/jps/ipq"
)

// searcher holds the mutable state for a single Compute invocation. Every
// field here is local to one call and released on return; the grid itself
// is borrowed read-only and never retained.
type searcher struct {
	grid []bool
	w, h int
	goal int
	opts Options

	gScore   []float64
	cameFrom []int
	closed   []bool
	open     *ipq.Queue
}

// Compute runs Jump Point Search for the shortest path from start to goal
// on grid (a row-major w*h passability bitmap) and returns a Result.
//
// Returns StatusInvalidArgs if start or goal lies outside [0, w*h) or is
// out of grid bounds. Returns StatusNoPath if the open set empties without
// reaching goal. Otherwise returns StatusOK with Path goal-first and start
// excluded.
//
// Compute is a pure, synchronous function: it performs no I/O, retains no
// state across calls, and is safe to call concurrently with other Compute
// calls on disjoint inputs.
func Compute(grid []bool, w, h, start, goal int) Result {
	return NewSearcher().Compute(grid, w, h, start, goal)
}

// Searcher is a reusable JPS configuration built by NewSearcher. It carries
// no state across calls to Compute; every call allocates its own local
// search-state arrays.
type Searcher struct {
	opts Options
}

// NewSearcher builds a Searcher, applying opts over DefaultOptions in
// left-to-right functional-options style.
func NewSearcher(opts ...Option) *Searcher {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Searcher{opts: cfg}
}

// Compute runs Jump Point Search with this Searcher's configuration. See
// the package-level Compute for the full contract.
func (sr *Searcher) Compute(grid []bool, w, h, start, goal int) Result {
	n := w * h
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return Result{Path: nil, Length: -1, Status: StatusInvalidArgs}
	}
	sx, sy := gridmath.ToCoord(w, start)
	gx, gy := gridmath.ToCoord(w, goal)
	if !gridmath.Contained(w, h, sx, sy) || !gridmath.Contained(w, h, gx, gy) {
		return Result{Path: nil, Length: -1, Status: StatusInvalidArgs}
	}

	s := &searcher{
		grid:     grid,
		w:        w,
		h:        h,
		goal:     goal,
		opts:     sr.opts,
		gScore:   make([]float64, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		open:     ipq.New(n),
	}
	for i := range s.cameFrom {
		s.cameFrom[i] = -1
	}

	s.gScore[start] = 0
	s.open.Insert(start, s.estimate(sx, sy, gx, gy))

	for s.open.Len() > 0 {
		cur, _ := s.open.FindMin()
		curX, curY := gridmath.ToCoord(w, cur)
		if curX == gx && curY == gy {
			return s.reconstruct(cur, start)
		}
		s.open.DeleteMin()
		s.closed[cur] = true

		dFrom := gridmath.NoDirection
		if prev := s.cameFrom[cur]; prev >= 0 {
			px, py := gridmath.ToCoord(w, prev)
			// cameFrom links span whole jump runs; reduce the link to its
			// unit step so DirectionOfMove sees adjacent cells.
			dFrom = gridmath.DirectionOfMove(px, py, px+sign(curX-px), py+sign(curY-py))
		}

		for d := 0; d < gridmath.NumDirections; d++ {
			if !isOptimalTurn(d, dFrom) {
				continue
			}
			jp := s.jump(d, cur)
			if jp < 0 {
				continue
			}
			jx, jy := gridmath.ToCoord(w, jp)
			if !gridmath.Contained(w, h, jx, jy) || s.closed[jp] {
				continue
			}
			s.relax(jp, cur, curX, curY, jx, jy, gx, gy)
		}
	}

	return Result{Path: nil, Length: 0, Status: StatusNoPath}
}

// relax considers the edge cur -> jp discovered along a single ray, and
// updates jp's best-known cost and predecessor if this route improves it.
// gScore is kept strictly as float64 throughout and never coerced through
// int, avoiding a rounding hazard that an int intermediate would introduce.
func (s *searcher) relax(jp, cur, curX, curY, jpX, jpY, goalX, goalY int) {
	tentative := s.gScore[cur] + preciseDistance(curX, curY, jpX, jpY)

	if !s.open.Exists(jp) {
		s.gScore[jp] = tentative
		s.cameFrom[jp] = cur
		s.open.Insert(jp, tentative+s.estimate(jpX, jpY, goalX, goalY))
		return
	}
	if s.gScore[jp] > tentative {
		s.cameFrom[jp] = cur
		s.gScore[jp] = tentative
		s.open.ChangePriority(jp, tentative+s.estimate(jpX, jpY, goalX, goalY))
	}
}
