package ipq_test

import (
	"fmt"

	"github.com/waypath/jps/ipq"
)

// ExampleQueue demonstrates the basic insert/decrease-key/drain cycle.
func ExampleQueue() {
	q := ipq.New(4)
	q.Insert(0, 5.0)
	q.Insert(1, 3.0)
	q.Insert(2, 8.0)

	// A cheaper route to node 2 is discovered; lower its priority in place.
	q.ChangePriority(2, 1.0)

	for q.Len() > 0 {
		node, priority := q.FindMin()
		fmt.Printf("node=%d priority=%.1f\n", node, priority)
		q.DeleteMin()
	}

	// Output:
	// node=2 priority=1.0
	// node=1 priority=3.0
	// node=0 priority=5.0
}
