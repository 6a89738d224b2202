// Package raster models the regular output grid of an interpolation run
// and its on-disk form: grid geometry (origin, cell sizes, shape, nodata
// sentinel), the row-major value buffer, free-text provenance metadata, and
// an ESRI ASCII grid codec.
//
// What:
//
//   - Config carries (west, north, resolution x/y, rows, cols, nodata).
//   - Grid is a Config plus its value buffer; rows are written whole by the
//     producing coordinator, cells are addressed (row, col) with row 0 at
//     the northern edge.
//   - ConfigFromBound derives geometry from a point-set bounding box and an
//     explicit cell size; Read copies geometry from an existing grid file.
//   - Write emits the ESRI ASCII (.asc) layout — "cellsize" for square
//     cells, the "dx"/"dy" variant otherwise — with full float64 precision,
//     and a "<path>.meta.txt" sidecar when metadata is present (the .asc
//     header has no comment field).
//
// Why:
//
//   - Interpolated surfaces need a dead-simple interchange format that GIS
//     tools ingest directly; ESRI ASCII is that format.
//
// Errors:
//
//   - ErrBadCellSize: non-positive or non-finite resolution.
//   - ErrBadExtent: fewer than one row or column, or a non-finite origin.
//   - ErrBadNodata: NaN nodata sentinel (cells could never equal it).
//   - ErrRowLength: SetRow called with a mis-sized slice.
//   - ErrBadHeader, ErrBadData: malformed .asc input.
package raster
