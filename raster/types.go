// Package raster types: grid geometry and the value grid.
package raster

// DefaultNodata is the conventional "no value" sentinel written when the
// caller does not choose one.
const DefaultNodata = -9999.0

// Config is the geometry of a regular grid: the top-left (north-west)
// corner, per-axis cell sizes, shape, and the nodata sentinel. Row 0 is the
// northernmost row; column 0 is the westernmost column.
type Config struct {
	West   float64 // x coordinate of the western grid edge
	North  float64 // y coordinate of the northern grid edge
	ResX   float64 // cell width
	ResY   float64 // cell height
	Rows   int
	Cols   int
	Nodata float64
}

// Grid is a Config together with its row-major value buffer and free-text
// provenance metadata. One Grid exists per run; workers never touch it —
// the coordinating goroutine writes whole rows.
type Grid struct {
	Config

	// Values holds Rows×Cols cells, row-major, row 0 first (north).
	Values []float64

	// Metadata carries provenance notes persisted next to the grid file.
	Metadata []string
}
