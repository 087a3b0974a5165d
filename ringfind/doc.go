// Package ringfind turns a coordinate-embedded graph into its ring
// statistics: the set of minimal interior rings and the perimeter loop(s)
// of each connected piece.
//
// What
//
//   - RingFinder: finite embeddings. Traces every face with facetrace,
//     keeps the counter-clockwise faces as CurrentRings, and XOR-merges
//     groups of rings that share edges into PerimeterRings — shared edges
//     cancel, so two adjacent squares merge into one hexagonal boundary.
//   - PeriodicRingFinder: embeddings in a rectangular periodic cell.
//     Resolves boundary-crossing edges with the minimum-image convention,
//     replicates the network across a (2r+1)×(2r+1) block of image cells
//     (WithTilingRadius, default 3×3), traces the tiled embedding, and
//     keeps one representative per lattice-translation class of rings.
//
// Both finders compute everything eagerly at construction and are
// read-only afterwards; independent finders over disjoint inputs may run
// concurrently. Neither mutates the input graph or coordinate map.
//
// Error taxonomy
//
//   - Configuration: ErrNilGraph, ErrBadCell, ErrOptionViolation,
//     facetrace.ErrMissingCoord (a connected node without a coordinate).
//   - Geometric inconsistency: ErrWrapMismatch (a ring whose wrap vectors
//     do not cancel), ErrCellTooSmall (a ring revisiting a node through a
//     periodic image), shape.ErrCoordMismatch during perimeter merging.
//   - Degenerate-but-valid: components with fewer than three nodes and
//     dangling chains simply contribute no rings.
//
// A fatal error aborts construction entirely — no partially populated
// result sets are observable.
//
// Complexity: tracing is near-linear in edges; the periodic variant
// multiplies the embedding by the (2r+1)² block before tracing.
package ringfind
