// Package sibson implements Sibson's natural-neighbour interpolation by
// area stealing over a Delaunay mesh.
//
// Overview:
//
//   - A query point q, dropped into the Voronoi diagram of the samples,
//     would carve its own cell out of the cells of its natural neighbours.
//     The fraction of q's cell stolen from neighbour i is that neighbour's
//     weight; the interpolated value is the weighted blend of neighbour
//     values. Weights are non-negative and sum to one, the interpolant is
//     continuous everywhere and exact at the samples.
//   - The engine never edits a triangulation in place. Per query it
//     triangulates a small padded copy of the anchor's neighbourhood twice:
//     once without q ("before" areas) and once with q occupying the last
//     padding slot ("after" areas). Cell areas come from walking each
//     neighbour's incident triangles and taking the polygon area of their
//     circumcenters.
//
// The anchor cache:
//
//   - Every query carries the id of its nearest sample — the anchor, as
//     reported by cloud.Index. Consecutive grid cells usually share an
//     anchor, so the neighbour set, the ghost frame and the "before" areas
//     are cached and reused until the anchor changes.
//   - The cache is deliberately not safe for concurrent use: run one
//     Interpolator per goroutine over a shared Cloud/Mesh/EdgeMap. That is
//     how the surface scheduler wires it — a private engine per worker,
//     zero locks.
//
// The ghost frame:
//
//   - Boundary neighbours of the local set have unbounded Voronoi cells, so
//     "area before insertion" would be undefined. The engine surrounds the
//     neighbourhood with a frame of synthetic points — the bounding box
//     expanded by twice the estimated point spacing, its edges seeded every
//     half-spacing — which caps every real cell. Frame points are far
//     enough out not to bias interior weights; they are excluded from the
//     weight blend.
//
// Failure semantics:
//
//   - ErrNoValue is a per-query miss (no edge-map entry for the anchor,
//     degenerate local geometry, non-positive total stolen area); the
//     caller writes its nodata sentinel and carries on.
//   - A failed re-triangulation is fatal: it means the point set itself is
//     malformed, and the whole run must stop. The two cases are
//     distinguished with errors.Is(err, sibson.ErrNoValue).
//
// See types.go for per-query complexity and the full sentinel list.
package sibson
