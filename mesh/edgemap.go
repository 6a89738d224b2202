package mesh

// NewEdgeMap builds the point→incoming-edge index for m.
//
// For every directed edge e the destination point is
// Triangles[NextHalfedge(e)]. The first edge seen for a point is recorded;
// a boundary edge always overwrites a prior interior entry, so walks
// started from the map stop cleanly at the hull rather than producing an
// incomplete neighbour cycle. Points appearing in no triangle (the
// triangulator drops exact duplicates) are absent from the map; callers
// treat absence as "no natural neighbours".
func NewEdgeMap(m *Mesh) EdgeMap {
	em := make(EdgeMap, len(m.Points))
	for e := range m.Triangles {
		dst := m.Triangles[NextHalfedge(e)]
		if _, seen := em[dst]; !seen || m.Halfedges[e] == Boundary {
			em[dst] = e
		}
	}

	return em
}
