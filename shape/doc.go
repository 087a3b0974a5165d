// Package shape provides the edge-set polygon abstraction used to store,
// compare, merge and reorder rings of a planar embedded network.
//
// What
//
//   - Edge: unordered pair of node ids, normalized so structural equality
//     is positional equality.
//   - Shape: an immutable polygon identified purely by its edge set.
//     Equality, hashing (Key) and containment ignore traversal order.
//   - Merge: symmetric difference of edge sets — shared edges cancel, so
//     two adjacent rings combine into their outer boundary.
//   - NodeList: deterministic cyclic ordering (minimum node first, smallest
//     neighbor next), reoriented counter-clockwise when geometry is present.
//   - Area / Polygon / PolygonArea: shoelace geometry over a Coords map.
//   - Set: deduplicated shape collection with a ring-size histogram.
//
// Why
//
//	Rings discovered by face tracing arrive as arbitrary traversals; an
//	edge-set identity makes rotation and direction irrelevant, and edge
//	cancellation under Merge turns interior rings into perimeter loops.
//
// A Shape may exist without coordinates ("abstract"); geometric operations
// then return ErrNoCoords. Coordinate maps are shared by reference and
// never mutated.
//
// Complexity: construction O(E log E); Merge O(E); NodeList O(E²) on the
// small rings it is meant for.
package shape
