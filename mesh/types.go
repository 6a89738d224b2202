// Package mesh types: the half-edge Mesh, its sentinels and the EdgeMap.
package mesh

import (
	"errors"

	"github.com/paulmach/orb"
)

// Boundary marks a directed edge with no opposite half-edge: the edge lies
// on the convex hull. It matches the sentinel used by the underlying
// triangulator, so Halfedges can be consumed without translation.
const Boundary = -1

// ErrNoTriangulation indicates the input point set cannot be triangulated:
// fewer than three points, or a fully collinear configuration.
var ErrNoTriangulation = errors.New("mesh: no valid triangulation for point set")

// Mesh is a read-only half-edge view of one Delaunay triangulation.
//
// Triangles holds point ids in counter-clockwise triples; position e in
// Triangles doubles as the id of the directed edge starting at that point.
// Halfedges[e] is the oppositely-directed edge in the adjacent triangle, or
// Boundary. Build once with Triangulate; never mutate afterwards — every
// traversal helper assumes a structurally valid, frozen mesh, which is what
// makes a Mesh freely shareable across goroutines.
type Mesh struct {
	// Points are the triangulated sites, in the caller's original order.
	Points []orb.Point
	// Triangles is 3×(triangle count) point ids, CCW per triple.
	Triangles []int
	// Halfedges maps each directed edge to its opposite, or Boundary.
	Halfedges []int

	hull orb.Ring
}

// EdgeMap maps a point id to one incoming half-edge id, i.e. an edge whose
// destination is that point. Entries for hull points always reference a
// boundary edge so that EdgesAround walks started from them terminate at
// the hull. Points absent from the map have no incident edges and therefore
// no natural neighbours.
type EdgeMap map[int]int
