package ringfind

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/halden/ringtrace/facetrace"
	"github.com/halden/ringtrace/shape"
)

// PeriodicRingFinder extracts the rings of a graph embedded in a rectangular
// periodic unit cell with wrap-around connectivity. Construction resolves
// which edges cross the cell boundary (minimum-image convention), replicates
// the network across a block of neighboring image cells, traces the tiled
// embedding, and deduplicates rings that are lattice translates of one
// another. Results are immutable after construction.
type PeriodicRingFinder struct {
	cell      r2.Vec
	current   *shape.Set
	perimeter *shape.Set
}

// offset is an integer lattice-translation vector in units of the cell.
type offset struct {
	X, Y int
}

func (o offset) sub(p offset) offset { return offset{X: o.X - p.X, Y: o.Y - p.Y} }

// image identifies one replica of a base node.
type image struct {
	base int64
	off  offset
}

// NewPeriodic builds the ring decomposition of the periodic embedding.
// cell holds the rectangular cell dimensions and must be positive on both
// axes. Rings are reported over base node ids with unwrapped coordinates
// anchored at the cell the ring's minimum node occupies.
//
// PerimeterRings is empty for a fully periodic system: every interior ring
// has a periodic neighbor on each side, so all edges cancel.
func NewPeriodic(g graph.Undirected, coords shape.Coords, cell r2.Vec, opts ...Option) (*PeriodicRingFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadCell, cell)
	}
	if err := checkCoords(g, coords); err != nil {
		return nil, err
	}

	tiling, err := newTiling(g, coords, cell, o.radius)
	if err != nil {
		return nil, err
	}

	faces, err := facetrace.Faces(tiling.graph, tiling.coords)
	if err != nil {
		return nil, fmt.Errorf("ringfind: tracing tiled graph: %w", err)
	}

	current := shape.NewSet()
	abstract := shape.NewSet()
	seen := make(map[string]struct{})
	for _, f := range faces {
		area, err := f.Area(tiling.coords)
		if err != nil {
			return nil, fmt.Errorf("ringfind: %w", err)
		}
		if area <= 0 {
			continue
		}
		ring, key, err := tiling.canonicalize(f.Cycle)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		current.Add(ring)
		abstract.Add(shape.New(ring.Edges(), nil))
	}

	// Perimeter cancellation runs on abstract copies: adjacent periodic
	// rings legitimately hold different unwrapped positions for a node
	// they share across the seam.
	perimeter, err := perimeters(abstract)
	if err != nil {
		return nil, err
	}

	return &PeriodicRingFinder{cell: cell, current: current, perimeter: perimeter}, nil
}

// Cell returns the periodic cell dimensions.
func (prf *PeriodicRingFinder) Cell() r2.Vec { return prf.cell }

// CurrentRings returns the deduplicated interior rings, one representative
// per lattice-translation class.
func (prf *PeriodicRingFinder) CurrentRings() *shape.Set { return prf.current }

// PerimeterRings returns the outer boundary loop(s) of any part of the
// network that is not closed by periodicity. The shapes are abstract (edge
// sets without geometry).
func (prf *PeriodicRingFinder) PerimeterRings() *shape.Set { return prf.perimeter }

// tiling is the locally replicated image of the periodic network: every
// base node copied across a (2r+1)×(2r+1) block of cells, every edge
// rewired to the image that makes it a genuine straight-line edge.
type tiling struct {
	graph  *simple.UndirectedGraph
	coords shape.Coords // image id → unwrapped position

	base   shape.Coords // original coordinates
	cell   r2.Vec
	radius int
	side   int
	nodes  []int64       // sorted base nodes
	index  map[int64]int // base node → position in nodes
	wraps  map[shape.Edge]offset
}

func newTiling(g graph.Undirected, coords shape.Coords, cell r2.Vec, radius int) (*tiling, error) {
	t := &tiling{
		graph:  simple.NewUndirectedGraph(),
		coords: make(shape.Coords),
		base:   coords,
		cell:   cell,
		radius: radius,
		side:   2*radius + 1,
		index:  make(map[int64]int),
		wraps:  make(map[shape.Edge]offset),
	}

	it := g.Nodes()
	for it.Next() {
		t.nodes = append(t.nodes, it.Node().ID())
	}
	sort.Slice(t.nodes, func(i, j int) bool { return t.nodes[i] < t.nodes[j] })
	for i, n := range t.nodes {
		t.index[n] = i
	}

	// Wrap vector per edge under the minimum-image convention: an axis
	// displacement beyond half the cell means the true edge crosses the
	// boundary there.
	var edges []shape.Edge
	for _, u := range t.nodes {
		nbrs := g.From(u)
		for nbrs.Next() {
			v := nbrs.Node().ID()
			if v <= u {
				continue
			}
			e, err := shape.NewEdge(u, v)
			if err != nil {
				return nil, fmt.Errorf("ringfind: %w", err)
			}
			d := r2.Sub(coords[e.V], coords[e.U])
			t.wraps[e] = offset{
				X: int(math.Round(d.X / cell.X)),
				Y: int(math.Round(d.Y / cell.Y)),
			}
			edges = append(edges, e)
		}
	}

	// Replicate nodes across the block.
	for _, n := range t.nodes {
		for ox := -radius; ox <= radius; ox++ {
			for oy := -radius; oy <= radius; oy++ {
				off := offset{X: ox, Y: oy}
				id := t.imageID(n, off)
				t.coords[id] = t.unwrapped(n, off)
				t.graph.AddNode(simple.Node(id))
			}
		}
	}

	// Rewire each edge: from a copy of U at offset o, the matching copy of
	// V sits at o − wrap, which cancels the boundary crossing.
	for _, e := range edges {
		w := t.wraps[e]
		for ox := -radius; ox <= radius; ox++ {
			for oy := -radius; oy <= radius; oy++ {
				from := offset{X: ox, Y: oy}
				to := from.sub(w)
				if to.X < -radius || to.X > radius || to.Y < -radius || to.Y > radius {
					continue
				}
				t.graph.SetEdge(simple.Edge{
					F: simple.Node(t.imageID(e.U, from)),
					T: simple.Node(t.imageID(e.V, to)),
				})
			}
		}
	}

	return t, nil
}

// imageID packs (base, offset) into a unique image node id.
func (t *tiling) imageID(base int64, off offset) int64 {
	cells := int64(t.side * t.side)
	slot := int64((off.X+t.radius)*t.side + (off.Y + t.radius))

	return int64(t.index[base])*cells + slot
}

// imageOf unpacks an image node id.
func (t *tiling) imageOf(id int64) image {
	cells := int64(t.side * t.side)
	slot := int(id % cells)

	return image{
		base: t.nodes[id/cells],
		off:  offset{X: slot/t.side - t.radius, Y: slot%t.side - t.radius},
	}
}

// unwrapped is the position of a node replica: base coordinate plus the
// lattice translation.
func (t *tiling) unwrapped(base int64, off offset) r2.Vec {
	return r2.Add(t.base[base], r2.Vec{
		X: float64(off.X) * t.cell.X,
		Y: float64(off.Y) * t.cell.Y,
	})
}

// canonicalize maps a traced image cycle back to base nodes, validates that
// its wrap vectors cancel, translates it so its minimum node sits in the
// origin cell, and returns the ring plus its translation-invariant key.
//
// The returned ring carries its own coordinate map: base positions with the
// ring's lattice translations applied, so a ring crossing the cell seam is
// reported with contiguous, unwrapped geometry.
func (t *tiling) canonicalize(cycle []int64) (*shape.Shape, string, error) {
	images := make([]image, len(cycle))
	for i, id := range cycle {
		images[i] = t.imageOf(id)
	}

	// A closed physical ring crosses back as often as it crosses out.
	var wsum offset
	for i, a := range images {
		b := images[(i+1)%len(images)]
		e, err := shape.NewEdge(a.base, b.base)
		if err != nil {
			return nil, "", fmt.Errorf("%w: image edge %d-%d", ErrCellTooSmall, a.base, b.base)
		}
		w, known := t.wraps[e]
		if !known {
			return nil, "", fmt.Errorf("%w: edge %v not in the base network", ErrWrapMismatch, e)
		}
		if a.base == e.U {
			wsum.X += w.X
			wsum.Y += w.Y
		} else {
			wsum.X -= w.X
			wsum.Y -= w.Y
		}
	}
	if wsum != (offset{}) {
		return nil, "", fmt.Errorf("%w: residual wrap %+v", ErrWrapMismatch, wsum)
	}

	// Anchor: lexicographically smallest (base, offset) node image.
	anchor := images[0]
	for _, img := range images[1:] {
		if img.base < anchor.base ||
			(img.base == anchor.base && (img.off.X < anchor.off.X ||
				(img.off.X == anchor.off.X && img.off.Y < anchor.off.Y))) {
			anchor = img
		}
	}

	rel := make([]image, len(images))
	coords := make(shape.Coords, len(images))
	for i, img := range images {
		r := image{base: img.base, off: img.off.sub(anchor.off)}
		rel[i] = r
		if prev, dup := coords[r.base]; dup {
			if prev != t.unwrapped(r.base, r.off) {
				return nil, "", fmt.Errorf("%w: node %d", ErrCellTooSmall, r.base)
			}
			continue
		}
		coords[r.base] = t.unwrapped(r.base, r.off)
	}

	edges := make([]shape.Edge, 0, len(rel))
	keyParts := make([]string, 0, len(rel))
	for i, a := range rel {
		b := rel[(i+1)%len(rel)]
		e, err := shape.NewEdge(a.base, b.base)
		if err != nil {
			return nil, "", fmt.Errorf("%w: node %d", ErrCellTooSmall, a.base)
		}
		edges = append(edges, e)
		if b.base < a.base {
			a, b = b, a
		}
		keyParts = append(keyParts, fmt.Sprintf("%d:%d,%d~%d:%d,%d",
			a.base, a.off.X, a.off.Y, b.base, b.off.X, b.off.Y))
	}
	sort.Strings(keyParts)

	return shape.New(edges, coords), strings.Join(keyParts, ";"), nil
}
