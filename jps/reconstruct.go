package jps

import "github.com/waypath/jps/gridmath"

// reconstruct walks cameFrom links from goalNode back to start, expanding
// each compressed jump-point segment into its full tile sequence. Only
// jump points are recorded in cameFrom; the interior tiles of each
// straight or diagonal run are regenerated here by stepping one cell at a
// time toward the current segment's target.
//
// Output is goal-first (index 0 == goal, last index == the tile just
// after start) with start itself excluded.
func (s *searcher) reconstruct(goalNode, start int) Result {
	w := s.w
	targetX, targetY := gridmath.ToCoord(w, goalNode)
	curX, curY := targetX, targetY
	target := goalNode

	var out []int
	for {
		curX, curY = stepOneToward(curX, curY, targetX, targetY)
		cur := gridmath.ToIndex(w, curX, curY)
		out = append(out, cur)
		if cur == target {
			next := s.cameFrom[target]
			if next < 0 {
				break
			}
			target = next
			targetX, targetY = gridmath.ToCoord(w, target)
		}
	}

	// The loop above always appends start as its final element (every
	// segment terminates by walking all the way to its target, and the
	// innermost target is start itself); drop it.
	if n := len(out); n > 0 && out[n-1] == start {
		out = out[:n-1]
	}

	return Result{Path: out, Length: len(out), Status: StatusOK}
}

// stepOneToward moves (x,y) one cell toward (targetX,targetY), changing
// each axis that differs by sign(target-current); this yields a cardinal
// step if only one axis differs, or a diagonal step if both do.
func stepOneToward(x, y, targetX, targetY int) (nx, ny int) {
	return x + sign(targetX-x), y + sign(targetY-y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
