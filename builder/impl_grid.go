// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// impl_grid.go — JitteredGrid(nx, ny) constructor.
//
// Contract:
//   - nx ≥ 1 and ny ≥ 1 (else ErrTooFewSamples).
//   - Lays an nx×ny lattice of cell centres over the box, then displaces
//     each sample by up to cfg.jitter of the cell spacing per axis.
//   - jitter > 0 requires an RNG (ErrNeedRandSource); jitter == 0 is a
//     pure lattice and needs none.
//
// Determinism:
//   - Stable sample order: row-major (iy asc, then ix asc).
//   - Fixed seed ⇒ fixed displacements.

package builder

import (
	"fmt"

	"github.com/katalvlaran/natgrid/cloud"
)

const (
	methodJitteredGrid = "JitteredGrid"
	minGridDim         = 1
)

// JitteredGrid returns a Constructor that builds an nx×ny displaced
// lattice, the workhorse fixture for interpolation-accuracy checks.
func JitteredGrid(nx, ny int) Constructor {
	return func(c *cloud.Cloud, cfg builderConfig) error {
		// 1) Validate parameters early.
		if nx < minGridDim || ny < minGridDim {
			return fmt.Errorf("%s: nx=%d, ny=%d (each must be ≥ %d): %w",
				methodJitteredGrid, nx, ny, minGridDim, ErrTooFewSamples)
		}
		if cfg.jitter > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: jitter=%g: %w", methodJitteredGrid, cfg.jitter, ErrNeedRandSource)
		}

		// 2) Cell spacing; centres sit half a cell inside the frame.
		sx := (cfg.box.Max.X() - cfg.box.Min.X()) / float64(nx)
		sy := (cfg.box.Max.Y() - cfg.box.Min.Y()) / float64(ny)

		// 3) Emit samples in row-major order.
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				x := cfg.box.Min.X() + (float64(ix)+0.5)*sx
				y := cfg.box.Min.Y() + (float64(iy)+0.5)*sy
				if cfg.jitter > 0 {
					x += (cfg.rng.Float64()*2 - 1) * cfg.jitter * sx
					y += (cfg.rng.Float64()*2 - 1) * cfg.jitter * sy
				}
				*c = append(*c, cloud.Sample{X: x, Y: y, Z: cfg.fieldFn(x, y)})
			}
		}

		return nil
	}
}
