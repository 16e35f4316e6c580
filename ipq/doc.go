// Package ipq implements an indexed binary min-heap priority queue over a
// known, finite range of integer node identifiers [0, N).
//
// What & Why
//
//   - Plain heaps (including container/heap used by itself) support Push/Pop
//     but not an O(log n) "lower this element's priority" operation, because
//     they have no way to find where an arbitrary element currently sits.
//   - Graph search algorithms that repeatedly discover cheaper routes to an
//     already-open node (Dijkstra, A*, Jump Point Search) need exactly that:
//     decrease-key (or, more generally, change-key) in O(log n).
//   - ipq solves this by keeping a dense []entry heap exactly like a normal
//     binary heap, plus a parallel indexOf []int side table mapping each
//     node id to its current slot in the heap (or -1 if absent). Every swap
//     the heap performs updates indexOf for both participants, so looking up
//     "where is node v right now" stays O(1).
//
// Internals:
//
//   - Queue satisfies container/heap's Len/Less/Swap/Push/Pop, so sift-up and
//     sift-down are delegated to the standard library (heap.Push, heap.Pop,
//     heap.Fix) rather than hand-rolled.
//   - ChangePriority locates the node via indexOf in O(1) and calls
//     heap.Fix, which sifts in whichever direction restores heap order —
//     callers never need to know whether a change raised or lowered the key.
//
// Complexity:
//
//   - New:            O(N) to allocate the indexOf table.
//   - Insert:          O(log n)
//   - Exists:          O(1)
//   - FindMin:         O(1)
//   - DeleteMin:       O(log n)
//   - PriorityOf:      O(1)
//   - ChangePriority:   O(log n)
//
// Failure modes:
//
//   - Insert on a node already present, or on a node outside [0, N), panics:
//     these are programming errors in the caller, not recoverable runtime
//     conditions.
//   - ChangePriority/PriorityOf on an absent node panics for the same reason.
package ipq
