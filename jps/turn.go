package jps

import "github.com/waypath/jps/gridmath"

// isOptimalTurn reports whether direction d is worth expanding when the
// current node was reached by arriving in direction dFrom.
// NoDirection (the start node) permits every direction. Otherwise d==dFrom
// is always allowed; a diagonal arrival additionally allows turning up to
// two steps either way (the two flanking cardinals plus their own
// diagonal-adjacent neighbors), and a cardinal arrival allows turning one
// step either way. All rotation uses gridmath.Normalize's floor modulo so
// negative offsets behave correctly.
func isOptimalTurn(d, dFrom int) bool {
	if dFrom == gridmath.NoDirection {
		return true
	}
	if d == dFrom {
		return true
	}

	spread := 1
	if gridmath.Diagonal(dFrom) {
		spread = 2
	}
	for k := 1; k <= spread; k++ {
		if d == gridmath.Normalize(dFrom+k) || d == gridmath.Normalize(dFrom-k) {
			return true
		}
	}

	return false
}
