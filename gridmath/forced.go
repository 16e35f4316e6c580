package gridmath

// HasForcedNeighbours reports whether cell (x,y), reached while traveling in
// direction dir, has a forced neighbor: a side-neighbor that becomes
// reachable only via (x,y) because the tile orthogonally behind it is
// blocked. This is the signal Jump Point Search uses to stop pruning a
// straight or diagonal run and record (x,y) as a jump point.
//
// Cardinal (even) dir: forced iff
//
//	¬(p(-1) ⇒ p(-2)) ∨ ¬(p(+1) ⇒ p(+2))
//
// Diagonal (odd) dir: forced iff
//
//	¬(p(-2) ⇒ p(-3)) ∨ ¬(p(+2) ⇒ p(+3))
//
// where p(k) = Enterable(step(x,y, dir+k)) and a⇒b ≡ (¬a ∨ b).
// Complexity: O(1).
func HasForcedNeighbours(grid []bool, w, h, x, y, dir int) bool {
	p := func(k int) bool {
		nx, ny := Step(x, y, dir+k)

		return Enterable(grid, w, h, nx, ny)
	}
	implies := func(a, b bool) bool { return !a || b }

	if Diagonal(dir) {
		return !implies(p(-2), p(-3)) || !implies(p(2), p(3))
	}

	return !implies(p(-1), p(-2)) || !implies(p(1), p(2))
}
