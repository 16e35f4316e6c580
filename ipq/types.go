package ipq

import "fmt"

// absent marks a node id that is not currently present in the queue.
const absent = -1

// entry is one heap slot: a node identifier paired with its current priority.
type entry struct {
	node     int
	priority float64
}

// Queue is a binary min-heap keyed by float64 priority, over node
// identifiers drawn from a known finite range [0, capacity).
//
// heap holds the dense array of entries in heap order. indexOf[node] gives
// the current slot of node in heap, or absent if node is not present.
// Both slices are sized to capacity up front so Insert never needs to grow
// indexOf; heap itself grows by append, same as any container/heap user.
type Queue struct {
	heap    []entry
	indexOf []int
}

// New allocates an empty Queue able to hold node identifiers in [0, capacity).
// Complexity: O(capacity).
func New(capacity int) *Queue {
	indexOf := make([]int, capacity)
	for i := range indexOf {
		indexOf[i] = absent
	}

	return &Queue{
		heap:    make([]entry, 0, capacity),
		indexOf: indexOf,
	}
}

// Len reports the number of elements currently queued.
// Complexity: O(1).
func (q *Queue) Len() int { return len(q.heap) }

// Less orders by ascending priority; ties break arbitrarily.
// Complexity: O(1).
func (q *Queue) Less(i, j int) bool { return q.heap[i].priority < q.heap[j].priority }

// Swap exchanges heap slots i and j and keeps indexOf in sync for both
// participants. Every sift performed by container/heap routes through this,
// so indexOf is never allowed to drift out of sync with heap.
// Complexity: O(1).
func (q *Queue) Swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.indexOf[q.heap[i].node] = i
	q.indexOf[q.heap[j].node] = j
}

// Push appends x (an entry) to the end of the heap array and records its
// slot. Called by container/heap; callers should use Insert instead.
// Complexity: O(1) amortized.
func (q *Queue) Push(x interface{}) {
	e := x.(entry)
	q.indexOf[e.node] = len(q.heap)
	q.heap = append(q.heap, e)
}

// Pop removes and returns the last heap slot. Called by container/heap as
// the tail end of DeleteMin's swap-to-root-then-pop dance; callers should
// use DeleteMin instead.
// Complexity: O(1).
func (q *Queue) Pop() interface{} {
	old := q.heap
	n := len(old)
	e := old[n-1]
	q.heap = old[:n-1]
	q.indexOf[e.node] = absent

	return e
}

// outOfRange panics with context identifying the offending node and the
// queue's configured capacity; used for precondition violations that are
// programming errors rather than recoverable failures.
func outOfRange(node, capacity int) {
	panic(fmt.Sprintf("ipq: node %d out of range [0, %d)", node, capacity))
}
