package surface

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"

	"github.com/katalvlaran/natgrid/cloud"
	"github.com/katalvlaran/natgrid/mesh"
	"github.com/katalvlaran/natgrid/raster"
	"github.com/katalvlaran/natgrid/sibson"
)

// rowResult carries one finished grid row from a worker to the coordinator.
type rowResult struct {
	row    int
	values []float64
}

// Interpolate estimates a value for every cell centre of cfg from the
// scattered samples and returns the filled grid.
//
// The sample cloud is triangulated once; workers share the triangulation,
// its point→edge map, and the nearest-sample index read-only, each driving
// a private estimator over every Workers-th row. Cells the estimator cannot
// value come back as cfg.Nodata. A failed triangulation — global or during
// any local query insertion — aborts the whole run.
//
// Steps:
//  1. Apply and normalize options.
//  2. Validate the cloud and the grid geometry.
//  3. Build the shared scaffolding: mesh, edge map, k-d index, hull ring.
//  4. Fan out row workers; assemble rows in the coordinator as they land.
//  5. Stamp provenance metadata on the finished grid.
func Interpolate(samples cloud.Cloud, cfg raster.Config, opts ...Option) (*raster.Grid, error) {
	// 1) Assemble options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	// 2) Validate inputs before spawning anything.
	if err := samples.Validate(); err != nil {
		return nil, err
	}
	grid, err := raster.NewGrid(cfg)
	if err != nil {
		return nil, err
	}

	// 3) Shared read-only scaffolding.
	m, err := mesh.Triangulate(samples.Points())
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	edges := mesh.NewEdgeMap(m)
	idx := cloud.NewIndex(samples)

	var clip orb.Ring
	if o.ClipToHull {
		clip = m.Hull()
	}

	workers := o.Workers
	if workers > cfg.Rows {
		workers = cfg.Rows
	}

	o.Logger.Info("interpolating surface",
		zap.Int("samples", samples.Len()),
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Int("workers", workers),
		zap.Bool("clip_to_hull", o.ClipToHull),
	)

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	// Each worker sends at most one error, so the buffer keeps every send
	// non-blocking even after the coordinator has stopped listening.
	resCh := make(chan rowResult, workers)
	errCh := make(chan error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			sweepRows(ctx, w, workers, samples, m, edges, idx, clip, cfg, resCh, errCh)
		}(w)
	}

	// 4) Single-writer assembly: only this goroutine touches the grid.
	done := 0
	for done < cfg.Rows {
		select {
		case r := <-resCh:
			copy(grid.Row(r.row), r.values)
			done++
			if o.Progress != nil {
				o.Progress(done, cfg.Rows)
			}
		case err = <-errCh:
			cancel()
			wg.Wait()
			o.Logger.Error("surface aborted", zap.Error(err))

			return nil, err
		case <-ctx.Done():
			wg.Wait()

			return nil, ctx.Err()
		}
	}
	wg.Wait()

	// 5) Provenance; kept independent of the worker count so identical
	// inputs write identical files.
	grid.AddMetadata(fmt.Sprintf("natgrid: sibson natural-neighbour surface from %d samples", samples.Len()))
	grid.AddMetadata(fmt.Sprintf("natgrid: cell %g x %g, clip-to-hull=%t", cfg.ResX, cfg.ResY, o.ClipToHull))

	o.Logger.Info("surface complete", zap.Int("rows", cfg.Rows), zap.Int("cols", cfg.Cols))

	return grid, nil
}

// sweepRows fills every stride-th row starting at row w. Finished rows go to
// resCh; the first fatal estimator error goes to errCh and ends the worker.
// Per-cell no-value outcomes become the grid's nodata sentinel.
func sweepRows(
	ctx context.Context,
	w, stride int,
	samples cloud.Cloud,
	m *mesh.Mesh,
	edges mesh.EdgeMap,
	idx *cloud.Index,
	clip orb.Ring,
	cfg raster.Config,
	resCh chan<- rowResult,
	errCh chan<- error,
) {
	ip, err := sibson.New(samples, m, edges)
	if err != nil {
		errCh <- err

		return
	}

	for row := w; row < cfg.Rows; row += stride {
		values := make([]float64, cfg.Cols)
		for col := 0; col < cfg.Cols; col++ {
			if ctx.Err() != nil {
				return
			}

			p := cfg.CellCenter(row, col)
			if clip != nil && !planar.RingContains(clip, p) {
				values[col] = cfg.Nodata

				continue
			}

			anchor, dist := idx.Nearest(p)
			z, err := ip.Estimate(p, anchor, dist)
			switch {
			case err == nil:
				values[col] = z
			case errors.Is(err, sibson.ErrNoValue):
				values[col] = cfg.Nodata
			default:
				errCh <- fmt.Errorf("surface: row %d, col %d: %w", row, col, err)

				return
			}
		}

		select {
		case resCh <- rowResult{row: row, values: values}:
		case <-ctx.Done():
			return
		}
	}
}
