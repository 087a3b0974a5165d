package facetrace_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/halden/ringtrace/facetrace"
	"github.com/halden/ringtrace/shape"
)

func buildGraph(pairs [][2]int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, p := range pairs {
		g.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}

	return g
}

func unitSquare() (*simple.UndirectedGraph, shape.Coords) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1}, 3: {X: 1, Y: 0},
	}

	return g, coords
}

// TestFaces_Square: a lone square has exactly two faces, the interior
// (counter-clockwise, positive area) and the unbounded outside (negative).
func TestFaces_Square(t *testing.T) {
	g, coords := unitSquare()
	faces, err := facetrace.Faces(g, coords)
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	if len(faces) != 2 {
		t.Fatalf("face count = %d; want 2", len(faces))
	}

	var positive, negative int
	for _, f := range faces {
		if len(f.Cycle) != 4 || len(f.Edges) != 4 {
			t.Errorf("face %v: cycle %d edges %d; want 4 and 4", f.Cycle, len(f.Cycle), len(f.Edges))
		}
		area, err := f.Area(coords)
		if err != nil {
			t.Fatalf("Area: %v", err)
		}
		switch {
		case area > 0:
			positive++
			if area != 1.0 {
				t.Errorf("interior area = %v; want 1.0", area)
			}
		case area < 0:
			negative++
		default:
			t.Errorf("face %v has zero area", f.Cycle)
		}
	}
	if positive != 1 || negative != 1 {
		t.Errorf("got %d interior, %d outer faces; want 1 and 1", positive, negative)
	}
}

// TestFaces_TwoSquares: two squares sharing an edge trace three faces, and
// every half-edge is consumed exactly once (cycle lengths sum to 2E).
func TestFaces_TwoSquares(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 5}, {4, 5}, {3, 4}})
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1},
		3: {X: 1, Y: 0}, 4: {X: 2, Y: 0}, 5: {X: 2, Y: 1},
	}

	faces, err := facetrace.Faces(g, coords)
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	if len(faces) != 3 {
		t.Fatalf("face count = %d; want 3", len(faces))
	}

	total := 0
	var interior, outer int
	for _, f := range faces {
		total += len(f.Cycle)
		area, err := f.Area(coords)
		if err != nil {
			t.Fatalf("Area: %v", err)
		}
		if area > 0 {
			interior++
		} else {
			outer++
			if len(f.Edges) != 6 {
				t.Errorf("outer face has %d edges; want 6", len(f.Edges))
			}
		}
	}
	if total != 2*7 {
		t.Errorf("summed cycle lengths = %d; want %d (twice the edge count)", total, 2*7)
	}
	if interior != 2 || outer != 1 {
		t.Errorf("got %d interior, %d outer; want 2 and 1", interior, outer)
	}
}

// TestFaces_PrunesDangling: a pendant chain hanging off a square cannot
// border a ring and must vanish before tracing.
func TestFaces_PrunesDangling(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 7}, {7, 8}})
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1}, 3: {X: 1, Y: 0},
		7: {X: 2, Y: 2}, 8: {X: 3, Y: 3},
	}

	faces, err := facetrace.Faces(g, coords)
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	if len(faces) != 2 {
		t.Fatalf("face count = %d; want 2", len(faces))
	}
	for _, f := range faces {
		for _, n := range f.Cycle {
			if n == 7 || n == 8 {
				t.Errorf("pruned node %d appears in face %v", n, f.Cycle)
			}
		}
	}
}

// TestFaces_NoRings: a bare path prunes away entirely.
func TestFaces_NoRings(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}})
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 1, Y: 0}, 2: {X: 2, Y: 0}, 3: {X: 3, Y: 0},
	}
	faces, err := facetrace.Faces(g, coords)
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	if len(faces) != 0 {
		t.Errorf("face count = %d; want 0", len(faces))
	}
}

// TestFaces_Errors covers nil graphs and missing coordinates.
func TestFaces_Errors(t *testing.T) {
	if _, err := facetrace.Faces(nil, shape.Coords{}); !errors.Is(err, facetrace.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}

	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 0}})
	coords := shape.Coords{0: {X: 0, Y: 0}, 1: {X: 1, Y: 0}} // node 2 missing
	if _, err := facetrace.Faces(g, coords); !errors.Is(err, facetrace.ErrMissingCoord) {
		t.Errorf("missing coord: want ErrMissingCoord, got %v", err)
	}
}

// TestFaces_Deterministic: repeated runs yield identical face sequences.
func TestFaces_Deterministic(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 5}, {4, 5}, {3, 4}})
	coords := shape.Coords{
		0: {X: 0, Y: 0}, 1: {X: 0, Y: 1}, 2: {X: 1, Y: 1},
		3: {X: 1, Y: 0}, 4: {X: 2, Y: 0}, 5: {X: 2, Y: 1},
	}

	first, err := facetrace.Faces(g, coords)
	if err != nil {
		t.Fatalf("Faces: %v", err)
	}
	for run := 0; run < 3; run++ {
		again, err := facetrace.Faces(g, coords)
		if err != nil {
			t.Fatalf("Faces: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: face count %d; want %d", run, len(again), len(first))
		}
		for i := range first {
			if shape.New(first[i].Edges, nil).Key() != shape.New(again[i].Edges, nil).Key() {
				t.Errorf("run %d: face %d differs", run, i)
			}
		}
	}
}
