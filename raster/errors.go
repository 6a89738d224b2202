package raster

import "errors"

var (
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("raster: cell size must be positive and finite")

	// ErrBadExtent indicates a grid with no rows or no columns.
	ErrBadExtent = errors.New("raster: grid needs at least one row and one column")

	// ErrBadNodata indicates a NaN nodata sentinel, which no cell value
	// could ever compare equal to.
	ErrBadNodata = errors.New("raster: nodata sentinel must not be NaN")

	// ErrRowLength indicates SetRow received a slice whose length differs
	// from the grid's column count.
	ErrRowLength = errors.New("raster: row length does not match column count")

	// ErrBadHeader indicates a malformed or incomplete ESRI ASCII header.
	ErrBadHeader = errors.New("raster: malformed ascii grid header")

	// ErrBadData indicates the ESRI ASCII body does not hold rows×cols
	// parseable values.
	ErrBadData = errors.New("raster: malformed ascii grid data")
)
