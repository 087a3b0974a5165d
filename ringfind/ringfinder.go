// Package ringfind extracts the minimal interior rings and perimeter loops
// of a finite planar straight-line embedded graph.
package ringfind

import (
	"fmt"

	"gonum.org/v1/gonum/graph"

	"github.com/halden/ringtrace/facetrace"
	"github.com/halden/ringtrace/shape"
)

// RingFinder computes the complete ring decomposition of a finite embedded
// graph at construction time. The result sets are immutable afterwards; a
// finder may be shared across goroutines once built.
type RingFinder struct {
	current   *shape.Set
	perimeter *shape.Set
}

// New traces every face of the embedding, keeps the counter-clockwise
// (positive-area) faces as interior rings, and derives the perimeter loop of
// each shape-connected group by cancelling shared edges.
//
// Components with fewer than three effective nodes contribute no rings and
// are not an error. A coordinate missing for any connected node is fatal
// (facetrace.ErrMissingCoord).
func New(g graph.Undirected, coords shape.Coords) (*RingFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkCoords(g, coords); err != nil {
		return nil, err
	}

	faces, err := facetrace.Faces(g, coords)
	if err != nil {
		return nil, fmt.Errorf("ringfind: tracing failed: %w", err)
	}

	current, err := classify(faces, coords)
	if err != nil {
		return nil, err
	}
	perimeter, err := perimeters(current)
	if err != nil {
		return nil, err
	}

	return &RingFinder{current: current, perimeter: perimeter}, nil
}

// CurrentRings returns the interior minimal rings, unique under edge-set
// equality.
func (rf *RingFinder) CurrentRings() *shape.Set { return rf.current }

// PerimeterRings returns the outer boundary loop(s), one per group of rings
// connected through shared edges. Empty when the topology is fully closed.
func (rf *RingFinder) PerimeterRings() *shape.Set { return rf.perimeter }

// checkCoords demands a coordinate for every node that has at least one
// neighbor, whether or not pruning would later discard it.
func checkCoords(g graph.Undirected, coords shape.Coords) error {
	it := g.Nodes()
	for it.Next() {
		n := it.Node().ID()
		if g.From(n).Len() == 0 {
			continue
		}
		if _, ok := coords[n]; !ok {
			return fmt.Errorf("ringfind: node %d: %w", n, facetrace.ErrMissingCoord)
		}
	}

	return nil
}

// classify keeps the faces traced counter-clockwise: with the tracer's turn
// convention those are exactly the bounded minimal faces.
func classify(faces []facetrace.Face, coords shape.Coords) (*shape.Set, error) {
	current := shape.NewSet()
	for _, f := range faces {
		area, err := f.Area(coords)
		if err != nil {
			return nil, fmt.Errorf("ringfind: %w", err)
		}
		if area > 0 {
			current.Add(f.Ring(coords))
		}
	}

	return current, nil
}

// perimeters groups rings that share at least one edge and XOR-merges each
// group: every edge interior to a group cancels, leaving the group's outer
// boundary. A group whose edges cancel completely (a closed topology) adds
// nothing.
func perimeters(current *shape.Set) (*shape.Set, error) {
	rings := current.Shapes()
	uf := newUnionFind(len(rings))
	owner := make(map[shape.Edge]int)
	for i, ring := range rings {
		for _, e := range ring.Edges() {
			if j, seen := owner[e]; seen {
				uf.union(i, j)
			} else {
				owner[e] = i
			}
		}
	}

	groups := make(map[int][]int)
	for i := range rings {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	perimeter := shape.NewSet()
	for _, members := range groups {
		boundary := rings[members[0]]
		for _, i := range members[1:] {
			merged, err := boundary.Merge(rings[i])
			if err != nil {
				return nil, fmt.Errorf("ringfind: perimeter merge: %w", err)
			}
			boundary = merged
		}
		if boundary.Len() > 0 {
			perimeter.Add(boundary)
		}
	}

	return perimeter, nil
}

// unionFind is a plain disjoint-set forest with path halving.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &unionFind{parent: parent}
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

func (uf *unionFind) union(i, j int) {
	ri, rj := uf.find(i), uf.find(j)
	if ri != rj {
		uf.parent[ri] = rj
	}
}
