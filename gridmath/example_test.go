package gridmath_test

import (
	"fmt"

	"github.com/waypath/jps/gridmath"
)

// ExampleStep demonstrates stepping north from a fixed origin, and stepping
// with a transiently negative direction input.
func ExampleStep() {
	x, y := 2, 2
	nx, ny := gridmath.Step(x, y, gridmath.N)
	fmt.Println("N:", nx, ny)

	// dir can be negative; it is normalized under floor modulo.
	nx, ny = gridmath.Step(x, y, -1)
	fmt.Println("-1 (== NW):", nx, ny)

	// Output:
	// N: 2 1
	// -1 (== NW): 1 1
}
