// Package cloud holds the sample-point model shared by every stage of the
// interpolation pipeline: the immutable Sample triple, the read-only Cloud
// collection, and the k-d tree Index answering nearest-sample queries.
//
// What:
//
//   - Sample bundles a planar coordinate with its scalar value (x, y, z).
//   - Cloud is the run's point set; a sample's slice position is its stable
//     id for the lifetime of the run.
//   - Index wraps a gonum k-d tree and answers Nearest(point) → (id, dist)
//     with Euclidean distance.
//
// Why:
//
//   - Interpolation needs one shared, never-mutated view of the samples that
//     workers can read concurrently without locks.
//   - The weight engine is anchored on the nearest sample of each query, so
//     nearest lookups must be cheap (O(log n) expected).
//
// Complexity:
//
//   - NewIndex: O(n log n) expected build time, O(n) memory.
//   - Index.Nearest: O(log n) expected per query.
//
// Errors:
//
//   - ErrTooFewSamples: the cloud holds fewer than MinSamples points.
package cloud
