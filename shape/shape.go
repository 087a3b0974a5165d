package shape

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is a polygon described purely by its set of edges. Identity, hashing
// and containment depend on the edge set alone: two shapes with the same
// edges are equal regardless of how either was traversed or constructed.
//
// A Shape built with a Coords map is geometric and additionally supports
// Area, Polygon, and winding-consistent node ordering. A Shape without
// coordinates is abstract; geometric operations return ErrNoCoords.
//
// Shapes are immutable once built. Merge produces a new Shape.
type Shape struct {
	edges  []Edge // sorted, deduplicated
	key    string
	coords Coords
}

// New builds a Shape from an edge collection and an optional coordinate map.
// Duplicate edges collapse; the input slice is not retained.
// Complexity: O(E log E).
func New(edges []Edge, coords Coords) *Shape {
	uniq := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		uniq[e] = struct{}{}
	}
	sorted := make([]Edge, 0, len(uniq))
	for e := range uniq {
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].U != sorted[j].U {
			return sorted[i].U < sorted[j].U
		}

		return sorted[i].V < sorted[j].V
	})

	var sb strings.Builder
	for i, e := range sorted {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d-%d", e.U, e.V)
	}

	return &Shape{edges: sorted, key: sb.String(), coords: coords}
}

// FromNodeList builds a ring Shape from an ordered node cycle.
// Returns ErrSelfLoop if consecutive nodes coincide.
func FromNodeList(list []int64, coords Coords) (*Shape, error) {
	edges, err := NodeListToEdges(list, true)
	if err != nil {
		return nil, err
	}

	return New(edges, coords), nil
}

// Key returns the canonical sorted-edge representation used for equality.
// Shapes in any rotation or order of edges share the same key.
func (s *Shape) Key() string { return s.key }

// Len reports the number of edges in the shape.
func (s *Shape) Len() int { return len(s.edges) }

// Contains reports whether e belongs to the shape's edge set.
func (s *Shape) Contains(e Edge) bool {
	i := sort.Search(len(s.edges), func(i int) bool {
		if s.edges[i].U != e.U {
			return s.edges[i].U >= e.U
		}

		return s.edges[i].V >= e.V
	})

	return i < len(s.edges) && s.edges[i] == e
}

// Edges returns a copy of the shape's edge set in canonical order.
func (s *Shape) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Coords returns the coordinate map the shape references (possibly nil).
func (s *Shape) Coords() Coords { return s.coords }

// Nodes returns the sorted set of node ids touched by the edge set.
func (s *Shape) Nodes() []int64 {
	seen := make(map[int64]struct{}, len(s.edges))
	for _, e := range s.edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}
	out := make([]int64, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Merge combines two shapes by symmetric difference of their edge sets:
// edges present in exactly one operand survive, shared edges cancel. Two
// adjacent rings merge into their common outer boundary this way.
//
// When both operands are geometric, every node they share must sit at exactly
// the same position in both coordinate maps; otherwise Merge returns
// ErrCoordMismatch. The result references the receiver's coordinate map.
func (s *Shape) Merge(other *Shape) (*Shape, error) {
	if s.coords != nil && other.coords != nil {
		for _, n := range s.sharedNodes(other) {
			a, aok := s.coords[n]
			b, bok := other.coords[n]
			if aok != bok || a != b {
				return nil, fmt.Errorf("%w: node %d at %v vs %v", ErrCoordMismatch, n, a, b)
			}
		}
	}

	in := make(map[Edge]struct{}, len(s.edges))
	for _, e := range s.edges {
		in[e] = struct{}{}
	}
	var diff []Edge
	for _, e := range other.edges {
		if _, dup := in[e]; dup {
			delete(in, e)
		} else {
			diff = append(diff, e)
		}
	}
	for e := range in {
		diff = append(diff, e)
	}

	return New(diff, s.coords), nil
}

// sharedNodes returns the nodes present in both shapes.
func (s *Shape) sharedNodes(other *Shape) []int64 {
	mine := make(map[int64]struct{})
	for _, e := range s.edges {
		mine[e.U] = struct{}{}
		mine[e.V] = struct{}{}
	}
	var out []int64
	seen := make(map[int64]struct{})
	for _, e := range other.edges {
		for _, n := range [2]int64{e.U, e.V} {
			if _, ok := mine[n]; !ok {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}

	return out
}

// NodeList reconstructs the cyclic node ordering of a simple ring: start at
// the minimum node id, repeatedly step to the smallest unvisited neighbor
// until every edge is consumed. When coordinates are available the ordering
// is reoriented counter-clockwise (positive shoelace area) and rotated so
// the minimum node comes first again.
//
// The ordering is deterministic and intended for display and geometry only;
// equality never depends on it. Returns ErrOpenShape if the edge set is not
// a single simple ring (the walk gets stuck or leaves edges unused).
func (s *Shape) NodeList() ([]int64, error) {
	if len(s.edges) < 3 {
		return nil, fmt.Errorf("%w: %d edges cannot close", ErrOpenShape, len(s.edges))
	}

	nodes := s.Nodes()
	// A simple ring touches exactly as many nodes as it has edges.
	if len(nodes) != len(s.edges) {
		return nil, fmt.Errorf("%w: %d nodes over %d edges", ErrOpenShape, len(nodes), len(s.edges))
	}
	list := make([]int64, 0, len(s.edges))
	list = append(list, nodes[0])
	seen := map[int64]struct{}{nodes[0]: {}}

	// In a simple ring the node count equals the edge count.
	for len(list) < len(s.edges) {
		last := list[len(list)-1]
		next := int64(-1)
		found := false
		for _, e := range s.edges {
			n, ok := e.Other(last)
			if !ok {
				continue
			}
			if _, visited := seen[n]; visited {
				continue
			}
			if !found || n < next {
				next, found = n, true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: walk stuck at node %d", ErrOpenShape, last)
		}
		list = append(list, next)
		seen[next] = struct{}{}
	}

	// The walk must close back onto the start, or the shape is a path.
	if ok := s.Contains(mustEdge(list[len(list)-1], list[0])); !ok {
		return nil, fmt.Errorf("%w: ends do not meet", ErrOpenShape)
	}

	if s.coords != nil {
		area, err := PolygonArea(list, s.coords)
		if err != nil {
			return nil, err
		}
		if area < 0 {
			// Reverse for counter-clockwise winding, then rotate the
			// minimum node back to the front.
			for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
				list[i], list[j] = list[j], list[i]
			}
			list = append(list[len(list)-1:], list[:len(list)-1]...)
		}
	}

	return list, nil
}

// Area computes the signed shoelace area over the canonical node ordering.
// The canonical ordering is counter-clockwise, so Area is non-negative for
// any simple ring. Returns ErrNoCoords for abstract shapes.
func (s *Shape) Area() (float64, error) {
	if s.coords == nil {
		return 0, ErrNoCoords
	}
	list, err := s.NodeList()
	if err != nil {
		return 0, err
	}

	return PolygonArea(list, s.coords)
}

// Polygon returns the shape as a closed coordinate ring suitable for a 2D
// rendering layer: the canonical node ordering's positions with the first
// vertex repeated at the end. Returns ErrNoCoords for abstract shapes.
func (s *Shape) Polygon() ([]r2.Vec, error) {
	if s.coords == nil {
		return nil, ErrNoCoords
	}
	list, err := s.NodeList()
	if err != nil {
		return nil, err
	}
	out := make([]r2.Vec, 0, len(list)+1)
	for _, n := range list {
		c, ok := s.coords[n]
		if !ok {
			return nil, fmt.Errorf("%w: node %d", ErrNoCoords, n)
		}
		out = append(out, c)
	}
	out = append(out, out[0])

	return out, nil
}

// String renders the canonical node ordering, falling back to the edge key
// for shapes that are not simple rings.
func (s *Shape) String() string {
	list, err := s.NodeList()
	if err != nil {
		return "{" + s.key + "}"
	}

	return fmt.Sprint(list)
}

// PolygonArea computes the signed area of the polygon visiting coords in the
// order given by list, using the shoelace formula: positive for
// counter-clockwise windings, negative for clockwise.
// Complexity: O(n).
func PolygonArea(list []int64, coords Coords) (float64, error) {
	if coords == nil {
		return 0, ErrNoCoords
	}
	var sum float64
	for i, n := range list {
		cur, ok := coords[n]
		if !ok {
			return 0, fmt.Errorf("%w: node %d", ErrNoCoords, n)
		}
		m := list[(i+1)%len(list)]
		next, ok := coords[m]
		if !ok {
			return 0, fmt.Errorf("%w: node %d", ErrNoCoords, m)
		}
		sum += r2.Cross(cur, next)
	}

	return 0.5 * sum, nil
}

// NodeListToEdges converts an ordered node sequence into its edge set, the
// inverse of Shape.NodeList. With isRing true the last node connects back to
// the first; otherwise the sequence is an open path.
func NodeListToEdges(list []int64, isRing bool) ([]Edge, error) {
	n := len(list)
	if !isRing {
		n--
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		e, err := NewEdge(list[i], list[(i+1)%len(list)])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// mustEdge is for edges known to be well-formed (distinct endpoints).
func mustEdge(u, v int64) Edge {
	e, err := NewEdge(u, v)
	if err != nil {
		panic(err)
	}

	return e
}
