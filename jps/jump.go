package jps

import "github.com/waypath/jps/gridmath"

// jump explores from node "from" in direction dir and returns either the
// index of the first jump point encountered, or -1 if the ray runs off the
// grid or into an obstacle before finding one.
//
// Continuing along the same ray is a tail call and is written here as a
// loop rather than recursion: only the diagonal fan-out, which probes the
// two orthogonal components at each diagonal step, still recurses, and
// those straight probes do not recurse further. Native call-stack depth is
// therefore at most two frames, whatever the run's length.
func (s *searcher) jump(dir, from int) int {
	x, y := gridmath.ToCoord(s.w, from)
	diagonal := gridmath.Diagonal(gridmath.Normalize(dir))

	for {
		cx, cy := gridmath.Step(x, y, dir)
		if !gridmath.Enterable(s.grid, s.w, s.h, cx, cy) {
			return -1
		}
		n := gridmath.ToIndex(s.w, cx, cy)
		if n == s.goal {
			return n
		}
		if gridmath.HasForcedNeighbours(s.grid, s.w, s.h, cx, cy, dir) {
			return n
		}
		if diagonal {
			if s.jump(dir-1, n) >= 0 {
				return n
			}
			if s.jump(dir+1, n) >= 0 {
				return n
			}
		}
		// No forced neighbor and (for diagonals) neither orthogonal probe
		// found a jump point: keep walking the same ray from n.
		x, y = cx, cy
	}
}
