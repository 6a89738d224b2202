package sibson

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/natgrid/cloud"
	"github.com/katalvlaran/natgrid/mesh"
)

// Interpolator evaluates natural-neighbour queries against one sample
// cloud and its Delaunay mesh. It owns a mutable anchor cache and reusable
// scratch buffers, so it is NOT safe for concurrent use: create one
// Interpolator per goroutine over the same shared (read-only) inputs.
type Interpolator struct {
	samples cloud.Cloud
	m       *mesh.Mesh
	edges   mesh.EdgeMap

	// Anchor cache, valid while anchor >= 0. The first len(neighbours)
	// slots of frame hold the neighbour coordinates, the rest is the ghost
	// frame; the final slot is overwritten with each query location.
	anchor     int
	neighbours []int
	frame      []orb.Point
	area1      []float64

	// Scratch reused across queries.
	seen    map[int]struct{}
	walk    []int
	lwalk   []int
	ring    orb.Ring
	area2   []float64
	diffs   []float64
	weights []float64
	zvals   []float64
}

// New builds an Interpolator over samples and their mesh. The edge map may
// be nil, in which case it is derived from the mesh; passing a prebuilt map
// lets many interpolators share one.
func New(samples cloud.Cloud, m *mesh.Mesh, edges mesh.EdgeMap) (*Interpolator, error) {
	if err := samples.Validate(); err != nil {
		return nil, fmt.Errorf("sibson: %w", err)
	}
	if m == nil {
		return nil, ErrNilMesh
	}
	if samples.Len() != len(m.Points) {
		return nil, fmt.Errorf("%w: %d samples vs %d mesh points", ErrSampleMismatch, samples.Len(), len(m.Points))
	}
	if edges == nil {
		edges = mesh.NewEdgeMap(m)
	}

	return &Interpolator{
		samples: samples,
		m:       m,
		edges:   edges,
		anchor:  -1,
		seen:    make(map[int]struct{}, 64),
	}, nil
}

// Estimate returns the natural-neighbour value at q, given the id of q's
// nearest sample and the Euclidean distance to it (both from cloud.Index).
//
// ErrNoValue marks a per-query miss to be mapped to nodata; any other
// error is fatal to the run.
func (ip *Interpolator) Estimate(q orb.Point, anchor int, dist float64) (float64, error) {
	// 1) The anchor indexes the shared arrays; reject ids out of range.
	if anchor < 0 || anchor >= ip.samples.Len() {
		return 0, fmt.Errorf("%w: %d", ErrBadAnchor, anchor)
	}

	// 2) Exact hit: the query coincides with its nearest sample.
	if dist == 0 {
		return ip.samples.Z(anchor), nil
	}

	// 3) Rebuild the cached neighbourhood when the anchor moved.
	if anchor != ip.anchor {
		if err := ip.rebuild(anchor); err != nil {
			return 0, err
		}
	}

	// 4) "After" areas: q takes the last frame slot (the padded point
	//    count stays fixed) and the neighbourhood is re-triangulated.
	ip.frame[len(ip.frame)-1] = q
	after, err := mesh.Triangulate(ip.frame)
	if err != nil {
		return 0, fmt.Errorf("sibson: query insertion: %w", err)
	}
	k := len(ip.neighbours)
	ip.area2 = grow(ip.area2, k)
	ip.cellAreas(after, ip.area2)

	// 5) Area stealing: per-neighbour shrink and its total.
	ip.diffs = grow(ip.diffs, k)
	for i := range ip.diffs {
		ip.diffs[i] = ip.area1[i] - ip.area2[i]
	}
	sum := floats.Sum(ip.diffs)
	if sum <= 0 {
		// Degenerate local geometry; the cell gets nodata.
		return 0, ErrNoValue
	}

	// 6) Normalised blend of the neighbour values.
	ip.weights = grow(ip.weights, k)
	ip.zvals = grow(ip.zvals, k)
	for i, n := range ip.neighbours {
		ip.weights[i] = ip.diffs[i] / sum
		ip.zvals[i] = ip.samples.Z(n)
	}

	return floats.Dot(ip.weights, ip.zvals), nil
}

// rebuild recomputes the anchor cache: the second-order neighbour set, the
// ghost frame around it, and every neighbour's "before" cell area.
func (ip *Interpolator) rebuild(anchor int) error {
	// A failed rebuild must not leave a half-initialised cache behind.
	ip.anchor = -1

	// 2a) Seed edge for the anchor; absence means no natural neighbours.
	e0, ok := ip.edges[anchor]
	if !ok {
		return ErrNoValue
	}

	// 2b) Gather first-order neighbours (every point sharing a triangle
	//     with the anchor, anchor included), then their neighbours in
	//     turn. Discovery order is the walk order, so the set — and every
	//     float summation over it — is deterministic.
	ip.neighbours = ip.neighbours[:0]
	clear(ip.seen)
	ip.appendAround(e0)
	firstOrder := len(ip.neighbours)
	for i := 0; i < firstOrder; i++ {
		if e, ok := ip.edges[ip.neighbours[i]]; ok {
			ip.appendAround(e)
		}
	}
	k := len(ip.neighbours)

	// 3a) Bounding box of the neighbourhood; the frame starts as the
	//     neighbour coordinates in slot order.
	west, south := math.Inf(1), math.Inf(1)
	east, north := math.Inf(-1), math.Inf(-1)
	ip.frame = ip.frame[:0]
	for _, n := range ip.neighbours {
		p := ip.samples.Point(n)
		ip.frame = append(ip.frame, p)
		west = math.Min(west, p.X())
		east = math.Max(east, p.X())
		south = math.Min(south, p.Y())
		north = math.Max(north, p.Y())
	}

	// 3b) Average point spacing estimate. A flat or empty box cannot host
	//     a ghost frame — degenerate neighbourhood, nodata.
	expansion := math.Sqrt((east - west) * (north - south) / float64(k))
	if expansion <= 0 || math.IsNaN(expansion) || math.IsInf(expansion, 0) {
		return ErrNoValue
	}
	west -= 2 * expansion
	east += 2 * expansion
	south -= 2 * expansion
	north += 2 * expansion

	// 3c) Ghost points spaced every half-expansion along the four expanded
	//     edges cap the boundary neighbours' otherwise unbounded cells.
	gap := expansion / 2
	for x := west; x <= east; x += gap {
		ip.frame = append(ip.frame, orb.Point{x, south}, orb.Point{x, north})
	}
	for y := south + gap; y < north; y += gap {
		ip.frame = append(ip.frame, orb.Point{west, y}, orb.Point{east, y})
	}

	// 4) "Before" areas over the pristine frame, one per real neighbour.
	before, err := mesh.Triangulate(ip.frame)
	if err != nil {
		return fmt.Errorf("sibson: neighbourhood triangulation: %w", err)
	}
	ip.area1 = grow(ip.area1, k)
	ip.cellAreas(before, ip.area1)

	ip.anchor = anchor

	return nil
}

// appendAround adds every vertex of every triangle incident to the
// destination point of edge e0, skipping ids already collected.
func (ip *Interpolator) appendAround(e0 int) {
	ip.walk = ip.m.EdgesAround(e0, ip.walk)
	for _, e := range ip.walk {
		a, b, c := ip.m.Triangle(mesh.TriangleOfEdge(e))
		ip.addNeighbour(a)
		ip.addNeighbour(b)
		ip.addNeighbour(c)
	}
}

func (ip *Interpolator) addNeighbour(id int) {
	if _, dup := ip.seen[id]; dup {
		return
	}
	ip.seen[id] = struct{}{}
	ip.neighbours = append(ip.neighbours, id)
}

// cellAreas fills dst[i] with the Voronoi cell area of local point i in lm.
// Local ids 0..len(dst)-1 are the real neighbours, in frame-slot order.
// The cell polygon is the walk-ordered sequence of incident-triangle
// circumcenters; points absent from the local edge map keep area 0.
func (ip *Interpolator) cellAreas(lm *mesh.Mesh, dst []float64) {
	lem := mesh.NewEdgeMap(lm)
	for i := range dst {
		dst[i] = 0
		e0, ok := lem[i]
		if !ok {
			continue
		}

		ip.lwalk = lm.EdgesAround(e0, ip.lwalk)
		ring := ip.ring[:0]
		for _, e := range ip.lwalk {
			ring = append(ring, lm.Circumcenter(mesh.TriangleOfEdge(e)))
		}
		ring = append(ring, ring[0])
		ip.ring = ring

		dst[i] = math.Abs(planar.Area(ring))
	}
}

// grow resizes s to n values, reusing capacity when it suffices.
func grow(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}

	return s[:n]
}
