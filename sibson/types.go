// Package sibson defines the natural-neighbour weight engine's types and
// sentinel errors.
//
// The Interpolator answers point queries against a fixed sample cloud and
// its Delaunay mesh by area stealing: insert the query into the local
// Voronoi diagram, measure how much area it removes from each neighbour's
// cell, and blend the neighbours' values with weights proportional to the
// stolen areas.
//
// Complexity (per query, k = natural-neighbour count, g = ghost points):
//
//	– Anchor change:  O((k+g) log(k+g)) to triangulate the padded
//	  neighbourhood and sweep the "before" cell areas.
//	– Every query:    O((k+g) log(k+g)) for the "after" triangulation plus
//	  O(k) for the weight blend; queries sharing the previous query's
//	  anchor skip the neighbourhood rebuild entirely.
//	– Memory:         O(k+g), all of it reused across queries.
//
// Errors (sentinel):
//
//	– ErrNoValue        per-query miss: the query has no defined
//	                    natural-neighbour value (absent edge-map entry,
//	                    degenerate local geometry, non-positive stolen
//	                    area). Callers map it to their nodata sentinel.
//	– ErrNilMesh        the Interpolator was built without a mesh.
//	– ErrSampleMismatch the cloud and mesh disagree on point count.
//	– ErrBadAnchor      anchor id outside the sample range.
//
// Any other non-nil error — in particular a failed internal
// re-triangulation — signals a malformed global point set and must abort
// the whole run, not just the query.
//
// Example:
//
//	ip, err := sibson.New(samples, m, edges)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	id, dist := index.Nearest(q)
//	z, err := ip.Estimate(q, id, dist)
//	if errors.Is(err, sibson.ErrNoValue) {
//	    z = nodata
//	}
package sibson

import "errors"

// Sentinel errors returned by the weight engine.
var (
	// ErrNoValue reports a per-query miss: no natural-neighbour value is
	// defined at the query location. It never indicates a malformed run.
	ErrNoValue = errors.New("sibson: no natural-neighbour value at query")

	// ErrNilMesh indicates New was called with a nil mesh.
	ErrNilMesh = errors.New("sibson: mesh is nil")

	// ErrSampleMismatch indicates the sample cloud and the mesh were built
	// over different point sets (their lengths differ).
	ErrSampleMismatch = errors.New("sibson: sample cloud and mesh point counts differ")

	// ErrBadAnchor indicates the nearest-sample id passed to Estimate is
	// outside the cloud's id range.
	ErrBadAnchor = errors.New("sibson: anchor id out of range")
)
