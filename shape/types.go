// Package shape defines the core types and sentinel errors for the
// edge-set polygon abstraction of github.com/halden/ringtrace.
package shape

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for shape operations.
var (
	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("shape: edge endpoints must differ")

	// ErrNoCoords indicates a geometric operation on a shape without
	// coordinates, or with a node missing from its coordinate map.
	ErrNoCoords = errors.New("shape: coordinates unavailable")

	// ErrCoordMismatch indicates two shapes disagree on the position of a
	// node they share, so they cannot be merged.
	ErrCoordMismatch = errors.New("shape: shapes disagree on a shared node position")

	// ErrOpenShape indicates the edge set does not form a single simple
	// closed ring, so no cyclic node ordering exists.
	ErrOpenShape = errors.New("shape: edge set is not a single closed ring")
)

// Coords maps node ids to 2D positions. Shapes hold it by reference and
// never copy or mutate it.
type Coords map[int64]r2.Vec

// Edge is an unordered pair of distinct node ids, stored with U < V so that
// structurally identical edges compare equal.
type Edge struct {
	U, V int64
}

// NewEdge builds a normalized Edge from two node ids.
// Returns ErrSelfLoop if u == v.
func NewEdge(u, v int64) (Edge, error) {
	if u == v {
		return Edge{}, fmt.Errorf("%w: node %d", ErrSelfLoop, u)
	}
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}, nil
}

// Other returns the endpoint of e opposite to n, and whether n is an
// endpoint of e at all.
func (e Edge) Other(n int64) (int64, bool) {
	switch n {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}
