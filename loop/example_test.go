package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleTrace walks the loop of a small noisy field. The junk pipes
// around the ring are never visited.
func ExampleTrace() {
	g, _ := pipegrid.Parse(`-L|F7
7S-7|
L|7||
-L-J|
L|-JF`)

	l, err := loop.Trace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", l)
	fmt.Println("farthest:", l.Farthest())

	shape, _ := loop.ResolveStart(l)
	fmt.Printf("start is really %q\n", shape.Char())

	// Output:
	// cells: [(1,1) (2,1) (3,1) (3,2) (3,3) (2,3) (1,3) (1,2)]
	// farthest: 4
	// start is really 'F'
}
