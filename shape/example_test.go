package shape_test

import (
	"fmt"

	"github.com/halden/ringtrace/shape"
)

// ExampleShape_Merge merges two unit squares sharing one edge: the shared
// edge cancels and the result is their 6-edge outer boundary, reported in
// counter-clockwise order starting at the minimum node.
func ExampleShape_Merge() {
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1},
		3: {X: 1, Y: 0}, 4: {X: 2, Y: 0}, 5: {X: 2, Y: 1},
	}
	ring := func(list ...int64) *shape.Shape {
		s, err := shape.FromNodeList(list, coords)
		if err != nil {
			panic(err)
		}

		return s
	}

	left := ring(0, 1, 2, 3)
	right := ring(2, 5, 4, 3)

	hexagon, err := left.Merge(right)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(hexagon.Len(), hexagon)
	// Output:
	// 6 [0 3 4 5 2 1]
}
