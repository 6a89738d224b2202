package raster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Validate checks the geometry: positive finite cell sizes, at least one
// row and column, a finite origin, and a comparable nodata sentinel.
func (c Config) Validate() error {
	if !(c.ResX > 0) || math.IsInf(c.ResX, 0) || !(c.ResY > 0) || math.IsInf(c.ResY, 0) {
		return fmt.Errorf("%w: %g x %g", ErrBadCellSize, c.ResX, c.ResY)
	}
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: %d x %d", ErrBadExtent, c.Rows, c.Cols)
	}
	if math.IsNaN(c.West) || math.IsInf(c.West, 0) || math.IsNaN(c.North) || math.IsInf(c.North, 0) {
		return fmt.Errorf("%w: origin %g,%g", ErrBadExtent, c.West, c.North)
	}
	if math.IsNaN(c.Nodata) {
		return ErrBadNodata
	}

	return nil
}

// CellCenter returns the coordinate of the centre of cell (row, col).
func (c Config) CellCenter(row, col int) orb.Point {
	return orb.Point{
		c.West + (float64(col)+0.5)*c.ResX,
		c.North - (float64(row)+0.5)*c.ResY,
	}
}

// CopyGeometry returns the geometry as a standalone Config ready to drive a
// fresh grid. Most useful promoted through Grid: a base grid read from disk
// hands its extent and cell sizes to a new run without its values or
// metadata.
func (c Config) CopyGeometry() Config { return c }

// South returns the y coordinate of the southern grid edge.
func (c Config) South() float64 { return c.North - float64(c.Rows)*c.ResY }

// East returns the x coordinate of the eastern grid edge.
func (c Config) East() float64 { return c.West + float64(c.Cols)*c.ResX }

// ConfigFromBound derives a square-celled geometry covering b with the
// given cell size. The grid is anchored at b's north-west corner and grows
// by whole cells until it covers the bound, so the eastern and southern
// edges may overshoot by less than one cell.
func ConfigFromBound(b orb.Bound, cell, nodata float64) (Config, error) {
	if !(cell > 0) || math.IsInf(cell, 0) {
		return Config{}, fmt.Errorf("%w: %g", ErrBadCellSize, cell)
	}

	cols := int(math.Ceil((b.Max.X() - b.Min.X()) / cell))
	rows := int(math.Ceil((b.Max.Y() - b.Min.Y()) / cell))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	cfg := Config{
		West:   b.Min.X(),
		North:  b.Max.Y(),
		ResX:   cell,
		ResY:   cell,
		Rows:   rows,
		Cols:   cols,
		Nodata: nodata,
	}

	return cfg, cfg.Validate()
}

// NewGrid allocates a grid for cfg with every cell preset to the nodata
// sentinel.
func NewGrid(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		Config: cfg,
		Values: make([]float64, cfg.Rows*cfg.Cols),
	}
	for i := range g.Values {
		g.Values[i] = cfg.Nodata
	}

	return g, nil
}

// At returns the value of cell (row, col). Indices are not range-checked
// beyond the backing slice bounds.
func (g *Grid) At(row, col int) float64 { return g.Values[row*g.Cols+col] }

// Set assigns the value of cell (row, col).
func (g *Grid) Set(row, col int, v float64) { g.Values[row*g.Cols+col] = v }

// Row returns the live backing slice of one grid row.
func (g *Grid) Row(row int) []float64 {
	return g.Values[row*g.Cols : (row+1)*g.Cols]
}

// SetRow copies a whole row of values into the grid.
func (g *Grid) SetRow(row int, vals []float64) error {
	if len(vals) != g.Cols {
		return fmt.Errorf("%w: got %d, want %d", ErrRowLength, len(vals), g.Cols)
	}
	copy(g.Row(row), vals)

	return nil
}

// AddMetadata appends one provenance line to the grid.
func (g *Grid) AddMetadata(line string) { g.Metadata = append(g.Metadata, line) }
