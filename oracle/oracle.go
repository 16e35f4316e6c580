package oracle

import "github.com/waypath/jps/gridmath"

// offsets8 lists the eight unit-step neighbor offsets, precomputed once
// rather than recomputed per cell.
var offsets8 = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// ShortestPathLength runs an unweighted breadth-first search from start to
// goal over the eight-connected passability bitmap grid (w*h, row-major,
// true = passable) and returns the number of steps on a shortest path and
// whether goal is reachable at all. Returns (0, true) when start == goal.
//
// Complexity: O(W·H) time and memory.
func ShortestPathLength(grid []bool, w, h, start, goal int) (length int, found bool) {
	n := w * h
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return 0, false
	}
	if start == goal {
		return 0, true
	}

	dist := make([]int, n)
	visited := make([]bool, n)
	queue := make([]int, 0, n)

	visited[start] = true
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if u == goal {
			return dist[u], true
		}
		ux, uy := gridmath.ToCoord(w, u)
		for _, d := range offsets8 {
			vx, vy := ux+d[0], uy+d[1]
			if !gridmath.Enterable(grid, w, h, vx, vy) {
				continue
			}
			v := gridmath.ToIndex(w, vx, vy)
			if visited[v] {
				continue
			}
			visited[v] = true
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return 0, false
}
