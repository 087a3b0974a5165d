// Package lattice builds small deterministic test networks — regular
// polygons, square grids, and fully periodic grids — as embedded graphs
// ready for ring extraction.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/halden/ringtrace/shape"
)

// Sentinel errors for lattice constructors.
var (
	// ErrTooFewSides indicates a polygon with fewer than three sides.
	ErrTooFewSides = errors.New("lattice: polygon needs at least three sides")

	// ErrBadDimensions indicates grid dimensions below the constructor's
	// minimum.
	ErrBadDimensions = errors.New("lattice: grid dimensions out of range")
)

const minPolygonSides = 3

// Polygon builds a regular n-gon of the given radius around centre.
// Node ids run idOffset..idOffset+n-1 in order around the ring, starting at
// the top and proceeding clockwise.
// Complexity: O(n).
func Polygon(n int, radius float64, centre r2.Vec, idOffset int64) (*simple.UndirectedGraph, shape.Coords, error) {
	if n < minPolygonSides {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrTooFewSides, n)
	}

	g := simple.NewUndirectedGraph()
	coords := make(shape.Coords, n)
	angle := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		id := idOffset + int64(i)
		coords[id] = r2.Add(centre, r2.Vec{
			X: radius * math.Sin(float64(i)*angle),
			Y: radius * math.Cos(float64(i)*angle),
		})
	}
	for i := 0; i < n; i++ {
		g.SetEdge(simple.Edge{
			F: simple.Node(idOffset + int64(i)),
			T: simple.Node(idOffset + int64((i+1)%n)),
		})
	}

	return g, coords, nil
}

// SquareGrid builds a planar grid of nx×ny unit squares on (nx+1)×(ny+1)
// nodes. Node (x, y) has id y·(nx+1)+x and coordinate (x, y).
// Complexity: O(nx·ny).
func SquareGrid(nx, ny int) (*simple.UndirectedGraph, shape.Coords, error) {
	if nx < 1 || ny < 1 {
		return nil, nil, fmt.Errorf("%w: %dx%d squares", ErrBadDimensions, nx, ny)
	}

	g := simple.NewUndirectedGraph()
	coords := make(shape.Coords, (nx+1)*(ny+1))
	id := func(x, y int) int64 { return int64(y*(nx+1) + x) }
	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			coords[id(x, y)] = r2.Vec{X: float64(x), Y: float64(y)}
		}
	}
	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			if x < nx {
				g.SetEdge(simple.Edge{F: simple.Node(id(x, y)), T: simple.Node(id(x+1, y))})
			}
			if y < ny {
				g.SetEdge(simple.Edge{F: simple.Node(id(x, y)), T: simple.Node(id(x, y+1))})
			}
		}
	}

	return g, coords, nil
}

// PeriodicSquareGrid builds a fully periodic nx×ny grid: every node has
// four neighbors, rows and columns wrap, and the matching cell is
// (nx, ny). Node (x, y) has id y·nx+x and coordinate (x, y).
//
// Both dimensions must be at least 3 so that wrap edges stay simple.
// Complexity: O(nx·ny).
func PeriodicSquareGrid(nx, ny int) (*simple.UndirectedGraph, shape.Coords, r2.Vec, error) {
	if nx < 3 || ny < 3 {
		return nil, nil, r2.Vec{}, fmt.Errorf("%w: %dx%d periodic nodes", ErrBadDimensions, nx, ny)
	}

	g := simple.NewUndirectedGraph()
	coords := make(shape.Coords, nx*ny)
	id := func(x, y int) int64 { return int64(y*nx + x) }
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			coords[id(x, y)] = r2.Vec{X: float64(x), Y: float64(y)}
		}
	}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			g.SetEdge(simple.Edge{F: simple.Node(id(x, y)), T: simple.Node(id((x+1)%nx, y))})
			g.SetEdge(simple.Edge{F: simple.Node(id(x, y)), T: simple.Node(id(x, (y+1)%ny))})
		}
	}

	return g, coords, r2.Vec{X: float64(nx), Y: float64(ny)}, nil
}
