// Package facetrace defines the face type and sentinel errors for angular
// face tracing over a coordinate-embedded graph.
package facetrace

import (
	"errors"

	"github.com/halden/ringtrace/shape"
)

// Sentinel errors for face tracing.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("facetrace: graph is nil")

	// ErrMissingCoord indicates a node referenced by an edge has no entry
	// in the coordinate map. This is a fatal configuration error.
	ErrMissingCoord = errors.New("facetrace: node has no coordinate")
)

// Face is one traced face boundary of the embedding.
//
// Cycle lists the nodes in traced order; Edges lists the undirected edges
// the trace consumed, with duplicates already collapsed (the unbounded face
// of a component with a bridge walks the bridge twice but owns it once).
type Face struct {
	Cycle []int64
	Edges []shape.Edge
}

// Area computes the signed shoelace area of the face in traced order.
// Interior faces are counter-clockwise and positive; the unbounded outer
// face of each component is clockwise and negative.
func (f Face) Area(coords shape.Coords) (float64, error) {
	return shape.PolygonArea(f.Cycle, coords)
}

// Ring wraps the face's edge set as a Shape referencing coords.
func (f Face) Ring(coords shape.Coords) *shape.Shape {
	return shape.New(f.Edges, coords)
}
