// Package ringtrace extracts the minimal enclosed polygons ("rings") of a
// planar, geometrically-embedded network — the ring statistics of an
// amorphous 2D material, a molecular mesh, or any straight-line planar graph —
// including networks embedded in a periodic unit cell with wrap-around
// connectivity.
//
// Everything is organized under five subpackages:
//
//	shape/     — edge-set polygon abstraction: equality by edge content,
//	             shoelace areas, winding-consistent node ordering, and
//	             boundary merging by symmetric difference
//	facetrace/ — angular face tracing: orders each node's incident edges by
//	             angle and walks every face boundary of the embedding
//	ringfind/  — RingFinder and PeriodicRingFinder: classify traced faces
//	             into interior rings and perimeter loops, with minimum-image
//	             wrap resolution and lattice-translate deduplication for
//	             periodic cells
//	lattice/   — deterministic network constructors (polygons, grids,
//	             periodic grids) used by tests and examples
//	netdata/   — loaders for persisted edge lists, coordinate lists and
//	             reference ring-size lists
//
// Graphs enter through gonum's graph.Undirected interface; coordinates are
// gonum spatial/r2 vectors keyed by node id. A quick ASCII example:
//
//	1───2───5
//	│   │   │
//	0───3───4
//
// is two unit squares sharing the edge 2–3: ringfind reports two interior
// 4-rings and one 6-edge perimeter loop.
package ringtrace
