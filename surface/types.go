// Package surface defines the configuration surface of the grid scheduler:
// worker count, hull clipping, cancellation, logging, and progress hooks.
//
// Options:
//
//	– Workers:    number of row workers (default runtime.NumCPU()).
//	– ClipToHull: write nodata outside the convex hull of the samples.
//	– Ctx:        context for cancellation / timeouts (default Background).
//	– Logger:     structured run logging (default zap.NewNop()).
//	– Progress:   per-row completion callback, called from the coordinator.
//
// Errors (sentinel):
//
//	– ErrBadWorkers if WithWorkers is handed a count below one (panic at
//	  option-application time, before any goroutine starts).
package surface

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
)

// ErrBadWorkers indicates a requested worker count below one.
var ErrBadWorkers = errors.New("surface: worker count must be at least one")

// Options configures one interpolation run.
//
// Workers    – how many goroutines sweep grid rows. Rows are dealt in
//
//	round-robin strides, so the cell→value mapping (and thus the
//	output) does not depend on this number.
//
// ClipToHull – when true, cells whose centre falls outside the convex hull
//
//	of the sample cloud are written as nodata instead of being
//	extrapolated through the ghost frame.
//
// Ctx        – cancels the run between cells; the partial grid is discarded.
// Logger     – receives start/finish and failure events.
// Progress   – observes row completion; invoked sequentially by the
//
//	coordinating goroutine as (rowsDone, rowsTotal).
type Options struct {
	Workers    int
	ClipToHull bool
	Ctx        context.Context
	Logger     *zap.Logger
	Progress   func(done, total int)
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithWorkers sets the number of row workers.
// Must pass a positive count; zero or negative cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithClipToHull masks every cell centre outside the convex hull of the
// samples with the grid's nodata sentinel.
func WithClipToHull() Option {
	return func(o *Options) {
		o.ClipToHull = true
	}
}

// WithContext attaches a cancellation context to the run. A nil ctx is
// replaced by context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger routes run events to l. A nil logger is replaced by
// zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithProgress registers a row-completion callback. The callback runs on
// the coordinating goroutine, never concurrently with itself.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns an Options struct initialized with production-safe
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Workers:    runtime.NumCPU().
//   - ClipToHull: false (estimate every cell, ghost frame handles the rim).
//   - Ctx:        context.Background().
//   - Logger:     zap.NewNop().
//   - Progress:   nil (no callback).
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Ctx:     context.Background(),
		Logger:  zap.NewNop(),
	}
}

// normalize fills the fields a caller may have zeroed by constructing
// Options directly instead of going through DefaultOptions.
func (o *Options) normalize() {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
