// Package facetrace enumerates the face boundaries of a planar straight-line
// embedded graph by always turning onto the next edge in angular order.
package facetrace

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/halden/ringtrace/shape"
)

// halfEdge is a directed traversal of an undirected edge.
type halfEdge struct {
	from, to int64
}

// embedding holds the angular adjacency structure the tracer walks:
// per-node neighbor rings sorted counter-clockwise by atan2, plus an index
// for constant-time "position of u around v" lookups.
type embedding struct {
	order []int64                 // surviving nodes, ascending
	adj   map[int64][]int64       // node → neighbors in CCW angular order
	index map[int64]map[int64]int // node → neighbor → position in adj
}

// Faces traces every face boundary of the embedded graph g, bounded faces
// and the unbounded outer face(s) alike. Nodes of degree one (and the
// chains behind them) cannot border any ring and are pruned first; a graph
// that prunes away entirely yields no faces, not an error.
//
// Every half-edge of the pruned graph is consumed by exactly one face, so
// the summed cycle lengths equal twice the pruned edge count.
//
// Returns ErrNilGraph for a nil graph and ErrMissingCoord if any surviving
// node lacks a coordinate.
// Complexity: O(V·d log d + E) for degree d neighbor sorting.
func Faces(g graph.Undirected, coords shape.Coords) ([]Face, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	emb, err := build(g, coords)
	if err != nil {
		return nil, err
	}

	visited := make(map[halfEdge]bool)
	var faces []Face
	for _, u := range emb.order {
		for _, v := range emb.adj[u] {
			if visited[halfEdge{u, v}] {
				continue
			}
			face, err := emb.trace(u, v, visited)
			if err != nil {
				return nil, err
			}
			faces = append(faces, face)
		}
	}

	return faces, nil
}

// build collects adjacency from g, prunes nodes that cannot be part of a
// ring, and sorts each surviving node's neighbors by angle.
func build(g graph.Undirected, coords shape.Coords) (*embedding, error) {
	adj := make(map[int64]map[int64]struct{})
	it := g.Nodes()
	for it.Next() {
		n := it.Node().ID()
		if _, ok := adj[n]; !ok {
			adj[n] = make(map[int64]struct{})
		}
		nbrs := g.From(n)
		for nbrs.Next() {
			m := nbrs.Node().ID()
			if m == n {
				continue
			}
			adj[n][m] = struct{}{}
		}
	}

	// Iteratively strip nodes of degree ≤ 1: a dangling node is not part
	// of any ring, and removing it may expose the next link of its chain.
	queue := make([]int64, 0, len(adj))
	for n, nbrs := range adj {
		if len(nbrs) <= 1 {
			queue = append(queue, n)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		nbrs, ok := adj[n]
		if !ok {
			continue
		}
		delete(adj, n)
		for m := range nbrs {
			if peer, ok := adj[m]; ok {
				delete(peer, n)
				if len(peer) <= 1 {
					queue = append(queue, m)
				}
			}
		}
	}

	emb := &embedding{
		adj:   make(map[int64][]int64, len(adj)),
		index: make(map[int64]map[int64]int, len(adj)),
	}
	for n := range adj {
		if _, ok := coords[n]; !ok {
			return nil, fmt.Errorf("%w: node %d", ErrMissingCoord, n)
		}
		emb.order = append(emb.order, n)
	}
	sort.Slice(emb.order, func(i, j int) bool { return emb.order[i] < emb.order[j] })

	for _, n := range emb.order {
		at := coords[n]
		ring := make([]int64, 0, len(adj[n]))
		for m := range adj[n] {
			ring = append(ring, m)
		}
		sort.Slice(ring, func(i, j int) bool {
			ai := angleTo(at, coords[ring[i]])
			aj := angleTo(at, coords[ring[j]])
			if ai != aj {
				return ai < aj
			}

			return ring[i] < ring[j]
		})
		pos := make(map[int64]int, len(ring))
		for i, m := range ring {
			pos[m] = i
		}
		emb.adj[n] = ring
		emb.index[n] = pos
	}

	return emb, nil
}

// angleTo reports the atan2 angle of the vector from a to b.
func angleTo(a, b r2.Vec) float64 {
	d := r2.Sub(b, a)

	return math.Atan2(d.Y, d.X)
}

// trace follows one face boundary starting on the half-edge u→v: arriving
// at a node, the walk leaves toward the cyclic predecessor (in CCW angular
// order) of the direction it came from — the tightest clockwise turn. With
// this convention interior faces come out counter-clockwise.
func (emb *embedding) trace(u, v int64, visited map[halfEdge]bool) (Face, error) {
	var cycle []int64
	cur, next := u, v
	for {
		visited[halfEdge{cur, next}] = true
		cycle = append(cycle, cur)

		ring := emb.adj[next]
		pos, ok := emb.index[next][cur]
		if !ok {
			return Face{}, fmt.Errorf("facetrace: inconsistent adjacency at %d→%d", cur, next)
		}
		cur, next = next, ring[(pos-1+len(ring))%len(ring)]
		if cur == u && next == v {
			break
		}
	}

	edges := make([]shape.Edge, 0, len(cycle))
	for i, n := range cycle {
		e, err := shape.NewEdge(n, cycle[(i+1)%len(cycle)])
		if err != nil {
			return Face{}, err
		}
		edges = append(edges, e)
	}

	return Face{Cycle: cycle, Edges: dedup(edges)}, nil
}

// dedup collapses repeated edges, preserving first-seen order.
func dedup(edges []shape.Edge) []shape.Edge {
	seen := make(map[shape.Edge]struct{}, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}
