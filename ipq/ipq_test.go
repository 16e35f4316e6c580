package ipq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypath/jps/ipq"
)

// ------------------------------------------------------------------------
// 1. Basic contract: insert, exists, findMin, deleteMin, size.
// ------------------------------------------------------------------------

func TestQueue_InsertFindMinDeleteMin(t *testing.T) {
	q := ipq.New(8)
	assert.Equal(t, 0, q.Len())

	q.Insert(3, 5.0)
	q.Insert(1, 2.0)
	q.Insert(5, 9.0)
	require.True(t, q.Exists(1))
	require.True(t, q.Exists(3))
	require.False(t, q.Exists(2))
	assert.Equal(t, 3, q.Len())

	node, prio := q.FindMin()
	assert.Equal(t, 1, node)
	assert.Equal(t, 2.0, prio)

	q.DeleteMin()
	assert.False(t, q.Exists(1))
	assert.Equal(t, 2, q.Len())

	node, prio = q.FindMin()
	assert.Equal(t, 3, node)
	assert.Equal(t, 5.0, prio)
}

func TestQueue_PriorityOf(t *testing.T) {
	q := ipq.New(4)
	q.Insert(0, 1.5)
	assert.Equal(t, 1.5, q.PriorityOf(0))
}

// ------------------------------------------------------------------------
// 2. ChangePriority must restore heap order whether raising or lowering.
// ------------------------------------------------------------------------

func TestQueue_ChangePriority_Lower(t *testing.T) {
	q := ipq.New(4)
	q.Insert(0, 10)
	q.Insert(1, 20)
	q.Insert(2, 30)

	q.ChangePriority(2, 1) // node 2 becomes the new minimum
	node, prio := q.FindMin()
	assert.Equal(t, 2, node)
	assert.Equal(t, 1.0, prio)
}

func TestQueue_ChangePriority_Raise(t *testing.T) {
	q := ipq.New(4)
	q.Insert(0, 10)
	q.Insert(1, 20)

	q.ChangePriority(0, 100) // node 0 no longer the minimum
	node, _ := q.FindMin()
	assert.Equal(t, 1, node)
}

// ------------------------------------------------------------------------
// 3. Precondition violations panic.
// ------------------------------------------------------------------------

func TestQueue_Panics(t *testing.T) {
	q := ipq.New(2)
	assert.Panics(t, func() { q.Insert(5, 1) }, "out-of-range insert")
	assert.Panics(t, func() { q.FindMin() }, "FindMin on empty queue")
	assert.Panics(t, func() { q.DeleteMin() }, "DeleteMin on empty queue")
	assert.Panics(t, func() { q.PriorityOf(0) }, "PriorityOf on absent node")
	assert.Panics(t, func() { q.ChangePriority(0, 1) }, "ChangePriority on absent node")

	q.Insert(0, 1)
	assert.Panics(t, func() { q.Insert(0, 2) }, "duplicate insert")
}

// ------------------------------------------------------------------------
// 4. Queue laws: after any sequence of Insert/DeleteMin/ChangePriority,
//    FindMin returns the minimum current priority, Exists reflects
//    membership, and Len equals inserts minus deletes. Checked against a
//    parallel reference map under a deterministic PRNG.
// ------------------------------------------------------------------------

func TestQueue_RandomizedAgainstReference(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	q := ipq.New(n)
	ref := make(map[int]float64) // node -> priority, mirrors queue membership

	refMin := func() (int, float64) {
		best, bestP := -1, 0.0
		first := true
		for node, p := range ref {
			if first || p < bestP {
				best, bestP = node, p
				first = false
			}
		}
		return best, bestP
	}

	for step := 0; step < 5000; step++ {
		switch rng.Intn(3) {
		case 0: // insert a node not currently present
			node := rng.Intn(n)
			if _, ok := ref[node]; ok {
				continue
			}
			p := rng.Float64() * 1000
			q.Insert(node, p)
			ref[node] = p
		case 1: // change priority of a present node
			if len(ref) == 0 {
				continue
			}
			var node int
			for k := range ref {
				node = k
				break
			}
			p := rng.Float64() * 1000
			q.ChangePriority(node, p)
			ref[node] = p
		case 2: // delete the minimum
			if len(ref) == 0 {
				continue
			}
			wantNode, wantP := refMin()
			gotNode, gotP := q.FindMin()
			require.Equal(t, wantNode, gotNode, "FindMin node mismatch at step %d", step)
			require.Equal(t, wantP, gotP, "FindMin priority mismatch at step %d", step)
			q.DeleteMin()
			delete(ref, wantNode)
		}
		require.Equal(t, len(ref), q.Len())
	}

	// Drain and confirm full sorted order matches a plain sort of what remains.
	var remaining []int
	for node := range ref {
		remaining = append(remaining, node)
	}
	sort.Slice(remaining, func(i, j int) bool { return ref[remaining[i]] < ref[remaining[j]] })
	for _, want := range remaining {
		got, _ := q.FindMin()
		assert.Equal(t, want, got)
		q.DeleteMin()
	}
	assert.Equal(t, 0, q.Len())
}
