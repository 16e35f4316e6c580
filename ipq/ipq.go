package ipq

import (
	"container/heap"
	"fmt"
)

// Insert adds node with the given priority.
//
// Precondition: node is in [0, capacity) and not already present; violating
// either panics, since both are caller bugs rather than recoverable errors.
// Complexity: O(log n).
func (q *Queue) Insert(node int, priority float64) {
	if node < 0 || node >= len(q.indexOf) {
		outOfRange(node, len(q.indexOf))
	}
	if q.indexOf[node] != absent {
		panic(fmt.Sprintf("ipq: node %d already present", node))
	}

	heap.Push(q, entry{node: node, priority: priority})
}

// Exists reports whether node is currently queued.
// Complexity: O(1).
func (q *Queue) Exists(node int) bool {
	if node < 0 || node >= len(q.indexOf) {
		return false
	}

	return q.indexOf[node] != absent
}

// FindMin returns the node with the smallest current priority and that
// priority, without removing it.
//
// Precondition: the queue is non-empty; calling on an empty queue panics.
// Complexity: O(1).
func (q *Queue) FindMin() (node int, priority float64) {
	if len(q.heap) == 0 {
		panic("ipq: FindMin on empty queue")
	}

	top := q.heap[0]

	return top.node, top.priority
}

// DeleteMin removes the node with the smallest current priority.
//
// Precondition: the queue is non-empty; calling on an empty queue panics.
// Complexity: O(log n).
func (q *Queue) DeleteMin() {
	if len(q.heap) == 0 {
		panic("ipq: DeleteMin on empty queue")
	}

	heap.Pop(q)
}

// PriorityOf returns the current priority of node.
//
// Precondition: node must be present; calling with an absent node panics.
// Complexity: O(1).
func (q *Queue) PriorityOf(node int) float64 {
	if !q.Exists(node) {
		panic(fmt.Sprintf("ipq: PriorityOf on absent node %d", node))
	}

	return q.heap[q.indexOf[node]].priority
}

// ChangePriority updates node's priority, whether that raises or lowers it,
// and restores heap order. Callers never need to know the direction of the
// change: heap.Fix sifts the element up or down as needed.
//
// Precondition: node must be present; calling with an absent node panics.
// Complexity: O(log n).
func (q *Queue) ChangePriority(node int, newPriority float64) {
	if !q.Exists(node) {
		panic(fmt.Sprintf("ipq: ChangePriority on absent node %d", node))
	}

	i := q.indexOf[node]
	q.heap[i].priority = newPriority
	heap.Fix(q, i)
}
