package mesh_test

import (
	"testing"

	"github.com/katalvlaran/natgrid/mesh"
	"github.com/paulmach/orb"
)

// TestNewEdgeMap_EveryPointMapped checks that each triangulated point owns
// an entry whose edge really terminates at it.
func TestNewEdgeMap_EveryPointMapped(t *testing.T) {
	pts := squareWithCentre()
	m, err := mesh.Triangulate(pts)
	if err != nil {
		t.Fatal(err)
	}
	em := mesh.NewEdgeMap(m)

	if len(em) != len(pts) {
		t.Fatalf("edge map has %d entries; want %d", len(em), len(pts))
	}
	for p, e := range em {
		if dst := m.Triangles[mesh.NextHalfedge(e)]; dst != p {
			t.Errorf("entry for point %d references edge %d terminating at %d", p, e, dst)
		}
	}
}

// TestNewEdgeMap_BoundaryPreference checks that hull points are seeded with
// a boundary edge, which is what makes their neighbour walks terminate.
func TestNewEdgeMap_BoundaryPreference(t *testing.T) {
	m, err := mesh.Triangulate(squareWithCentre())
	if err != nil {
		t.Fatal(err)
	}
	em := mesh.NewEdgeMap(m)

	// A point is a hull point iff some boundary edge terminates at it.
	onHull := make(map[int]bool)
	for e, opp := range m.Halfedges {
		if opp == mesh.Boundary {
			onHull[m.Triangles[mesh.NextHalfedge(e)]] = true
		}
	}
	if len(onHull) != 4 {
		t.Fatalf("hull point count = %d; want 4", len(onHull))
	}

	for p := range onHull {
		e, ok := em[p]
		if !ok {
			t.Fatalf("hull point %d missing from edge map", p)
		}
		if m.Halfedges[e] != mesh.Boundary {
			t.Errorf("hull point %d seeded with interior edge %d", p, e)
		}
	}
}

// TestNewEdgeMap_InteriorSeedWalksFullCycle ties the map and the walk
// together: starting from the recorded edge of an interior point visits all
// of its incident triangles.
func TestNewEdgeMap_InteriorSeedWalksFullCycle(t *testing.T) {
	// A 3x3 jittered block keeps the centre point strictly interior.
	pts := []orb.Point{
		{0, 0}, {5, -0.3}, {10, 0},
		{-0.2, 5}, {5.1, 4.8}, {10.3, 5},
		{0, 10}, {5, 10.2}, {10, 10},
	}
	m, err := mesh.Triangulate(pts)
	if err != nil {
		t.Fatal(err)
	}
	em := mesh.NewEdgeMap(m)

	const centre = 4
	edges := m.EdgesAround(em[centre], nil)

	// Count the centre's incident triangles directly from the triples.
	incident := 0
	for ti := 0; ti < m.NumTriangles(); ti++ {
		a, b, c := m.Triangle(ti)
		if a == centre || b == centre || c == centre {
			incident++
		}
	}
	if len(edges) != incident {
		t.Errorf("walk visited %d edges; point has %d incident triangles", len(edges), incident)
	}
}
