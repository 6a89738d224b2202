// Package surface sweeps a natural-neighbour estimator across a regular
// grid, turning a scattered sample cloud into a raster in one call. It is
// the coordinating layer of natgrid: everything below it (triangulation,
// edge indexing, the Sibson weight engine, nearest-sample lookup) is built
// once per run and shared, while the per-cell work is dealt out to a pool
// of row workers.
//
// # Pipeline
//
// One Interpolate call runs five stages:
//
//  1. Validate the sample cloud and the grid geometry.
//  2. Triangulate the cloud (mesh.Triangulate) and derive its point→edge
//     map (mesh.NewEdgeMap). Any triangulation failure here is fatal.
//  3. Build the nearest-sample index (cloud.NewIndex) so each cell centre
//     can be anchored to the sample whose surroundings seed the estimate.
//  4. Fan out W row workers. Worker w owns rows w, w+W, w+2W, …; each
//     carries a private sibson.Interpolator, so anchor caches never need
//     locking. Finished rows flow back over a channel and a single
//     coordinating goroutine writes them into the grid.
//  5. Stamp provenance metadata and hand the grid back.
//
// # Concurrency and determinism
//
// The triangulation, edge map, sample cloud, and k-d index are shared
// read-only; per-worker state is confined to the worker. The value of a
// cell depends only on the cell centre, the cloud, and the triangulation —
// never on which worker computed it or in which order rows completed — so
// runs with one worker and with many produce bitwise-identical grids.
//
// Interleaving rows across workers (rather than handing each a contiguous
// block) keeps the pool balanced when the cloud is dense in one corner of
// the grid: expensive rows land on every worker instead of one.
//
// # Cells without a value
//
// Estimation failures are split the same way the engine splits them:
//
//	– sibson.ErrNoValue (degenerate neighbourhood, missing edge entry,
//	  non-positive weight mass) marks that one cell as cfg.Nodata and the
//	  sweep continues;
//	– every other error — above all a failed local re-triangulation —
//	  cancels the whole run and Interpolate returns it.
//
// WithClipToHull adds a cheaper first line: cell centres outside the convex
// hull of the cloud are set to nodata without consulting the estimator at
// all, which both skips the ghost-frame extrapolation zone and avoids
// charging hull-rim artifacts to the output.
//
// # API
//
// The entry point:
//
//	func Interpolate(
//	    samples cloud.Cloud,
//	    cfg raster.Config,
//	    opts ...Option,
//	) (*raster.Grid, error)
//
// Options follow the functional pattern; see DefaultOptions, WithWorkers,
// WithClipToHull, WithContext, WithLogger, and WithProgress.
//
// # Errors
//
//	cloud.ErrTooFewSamples  - fewer than three samples.
//	raster sentinels        - malformed grid geometry (cell size, extent, nodata).
//	mesh.ErrNoTriangulation - the cloud has no valid triangulation (collinear input).
//	sibson fatal errors     - a query insertion failed mid-sweep.
//	context.Canceled / context.DeadlineExceeded - the run's Ctx fired.
//
// # Integration
//
//   - Consumes github.com/katalvlaran/natgrid/cloud, /mesh, and /sibson.
//   - Produces a *raster.Grid ready for raster.(*Grid).Write.
//   - Loggers are go.uber.org/zap; pass zap.NewNop() (the default) to stay silent.
package surface
