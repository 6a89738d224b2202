// Package mesh exposes a Delaunay triangulation through the flat half-edge
// representation the interpolation engine traverses: counter-clockwise
// triangle triples, opposite half-edge ids with a Boundary sentinel, the
// convex-hull ring, triangle circumcenters, and the point→incident-edge map
// that seeds neighbour walks.
//
// What:
//
//   - Triangulate builds a Mesh from planar points (Delaunay construction
//     itself is delegated to github.com/fogleman/delaunay).
//   - Triangles is a flat []int of CCW triples; Halfedges pairs each
//     directed edge with its opposite, or Boundary on the hull.
//   - NextHalfedge / TriangleOfEdge are pure index arithmetic.
//   - EdgesAround walks the incoming edges of a point, stopping at the hull.
//   - NewEdgeMap picks one incoming half-edge per point, preferring boundary
//     edges so hull walks terminate instead of wrapping.
//
// Why:
//
//   - Natural-neighbour interpolation is a sequence of local traversals over
//     exactly this structure; index arrays with sentinel values share across
//     goroutines with no locks and no pointer cycles.
//
// Invariants (for every valid Mesh):
//
//   - Triangles[NextHalfedge(e)] is the destination point of edge e.
//   - Halfedges[Halfedges[e]] == e whenever Halfedges[e] != Boundary.
//
// Complexity:
//
//   - Triangulate: O(n log n). NewEdgeMap: O(n). EdgesAround: O(degree).
//
// Errors:
//
//   - ErrNoTriangulation: the point set admits no Delaunay triangulation
//     (fewer than three points, or all points collinear).
package mesh
