package mesh

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"github.com/paulmach/orb"
)

// Triangulate builds the half-edge Mesh over the given points.
// The input slice is copied; the caller keeps ownership of pts and may
// reuse or mutate it after the call. Point ids in the resulting mesh are
// positions in pts.
//
// Returns ErrNoTriangulation when len(pts) < 3 or the points are collinear.
func Triangulate(pts []orb.Point) (*Mesh, error) {
	// 1) Reject sets that cannot span a triangle before calling out.
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: %d point(s)", ErrNoTriangulation, len(pts))
	}

	// 2) Hand an owned copy to the triangulator.
	dpts := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		dpts[i] = delaunay.Point{X: p.X(), Y: p.Y()}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTriangulation, err)
	}

	// 3) Freeze the accessor view: points, triples, opposites, hull ring.
	m := &Mesh{
		Points:    append([]orb.Point(nil), pts...),
		Triangles: tri.Triangles,
		Halfedges: tri.Halfedges,
		hull:      hullRing(tri.ConvexHull),
	}

	return m, nil
}

// hullRing converts the triangulator's hull point sequence into a closed
// orb.Ring usable for containment and area queries.
func hullRing(hull []delaunay.Point) orb.Ring {
	if len(hull) == 0 {
		return nil
	}

	ring := make(orb.Ring, 0, len(hull)+1)
	for _, p := range hull {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	// Close the ring explicitly.
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return ring
}

// NextHalfedge returns the next directed edge within the same triangle:
// e - e%3 + (e+1)%3. Pure index arithmetic, valid for any e in range.
func NextHalfedge(e int) int { return e - e%3 + (e+1)%3 }

// TriangleOfEdge returns the triangle id containing directed edge e.
func TriangleOfEdge(e int) int { return e / 3 }

// NumTriangles returns the triangle count.
func (m *Mesh) NumTriangles() int { return len(m.Triangles) / 3 }

// Triangle returns the three point ids of triangle t, in CCW order.
func (m *Mesh) Triangle(t int) (int, int, int) {
	return m.Triangles[3*t], m.Triangles[3*t+1], m.Triangles[3*t+2]
}

// Hull returns the closed convex-hull ring of the triangulated points.
// The ring is shared, not copied; treat it as read-only.
func (m *Mesh) Hull() orb.Ring { return m.hull }

// Circumcenter returns the circumcenter of triangle t — the Voronoi vertex
// shared by the cells of the triangle's three points. Triangles of a valid
// Delaunay mesh are non-degenerate, so the divisor is non-zero.
func (m *Mesh) Circumcenter(t int) orb.Point {
	a := m.Points[m.Triangles[3*t]]
	b := m.Points[m.Triangles[3*t+1]]
	c := m.Points[m.Triangles[3*t+2]]

	d := 2 * (a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y()))
	an := a.X()*a.X() + a.Y()*a.Y()
	bn := b.X()*b.X() + b.Y()*b.Y()
	cn := c.X()*c.X() + c.Y()*c.Y()

	ux := (an*(b.Y()-c.Y()) + bn*(c.Y()-a.Y()) + cn*(a.Y()-b.Y())) / d
	uy := (an*(c.X()-b.X()) + bn*(a.X()-c.X()) + cn*(b.X()-a.X())) / d

	return orb.Point{ux, uy}
}

// EdgesAround appends to buf every incoming half-edge around the point that
// edge start terminates at, in rotation order, and returns the extended
// slice. The walk follows Halfedges[NextHalfedge(incoming)] and stops when
// it returns to start (interior point, full cycle) or reaches the hull
// (Boundary). Pass a reused buffer to avoid per-call allocation; buf is
// truncated before use.
//
// For complete hull walks, start must be a boundary-incident edge — exactly
// what NewEdgeMap records for hull points.
func (m *Mesh) EdgesAround(start int, buf []int) []int {
	buf = buf[:0]
	incoming := start
	for {
		buf = append(buf, incoming)
		incoming = m.Halfedges[NextHalfedge(incoming)]
		if incoming == Boundary || incoming == start {
			break
		}
	}

	return buf
}
