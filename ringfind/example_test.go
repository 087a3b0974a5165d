package ringfind_test

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/halden/ringtrace/ringfind"
	"github.com/halden/ringtrace/shape"
)

// ExampleNew decomposes two unit squares sharing an edge: two interior
// 4-rings, one 6-edge perimeter loop.
func ExampleNew() {
	g := simple.NewUndirectedGraph()
	for _, p := range [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 5}, {4, 5}, {3, 4}} {
		g.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1},
		3: {X: 1, Y: 0}, 4: {X: 2, Y: 0}, 5: {X: 2, Y: 1},
	}

	rf, err := ringfind.New(g, coords)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("rings:", rf.CurrentRings().Len(), "perimeters:", rf.PerimeterRings().Len())
	for _, ring := range rf.CurrentRings().Shapes() {
		fmt.Println(ring)
	}
	// Output:
	// rings: 2 perimeters: 1
	// [0 3 2 1]
	// [2 3 4 5]
}

// ExampleNewPeriodic closes the same network over a periodic cell: the two
// wrap edges form a third square across the boundary.
func ExampleNewPeriodic() {
	g := simple.NewUndirectedGraph()
	for _, p := range [][2]int64{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 5}, {4, 5}, {3, 4}, {5, 1}, {4, 0},
	} {
		g.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1},
		3: {X: 1, Y: 0}, 4: {X: 2, Y: 0}, 5: {X: 2, Y: 1},
	}

	prf, err := ringfind.NewPeriodic(g, coords, r2.Vec{X: 2.5, Y: 2.5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("rings:", prf.CurrentRings().Len())
	fmt.Println("sizes:", prf.CurrentRings().Sizes())
	// Output:
	// rings: 3
	// sizes: map[4:3]
}
