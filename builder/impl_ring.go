// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// impl_ring.go — Ring(n, radius) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewSamples); radius > 0 and finite (else
//     ErrBadRadius).
//   - Places n samples evenly on a circle around the box centre, starting
//     at angle 0 and walking counter-clockwise. No RNG involved.
//
// The ring is the classic fixture for weight-decay checks: estimates at
// growing distance from the ring centre shift smoothly from the centre's
// value toward the rim values.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/natgrid/cloud"
)

const (
	methodRing    = "Ring"
	minRingPoints = 3
)

// Ring returns a Constructor that places n samples evenly on a circle of
// the given radius around the centre of the box.
func Ring(n int, radius float64) Constructor {
	return func(c *cloud.Cloud, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRingPoints {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRing, n, minRingPoints, ErrTooFewSamples)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%g: %w", methodRing, radius, ErrBadRadius)
		}

		// 2) Walk the circle counter-clockwise from angle 0.
		cx := (cfg.box.Min.X() + cfg.box.Max.X()) / 2
		cy := (cfg.box.Min.Y() + cfg.box.Max.Y()) / 2
		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			x := cx + radius*math.Cos(float64(i)*step)
			y := cy + radius*math.Sin(float64(i)*step)
			*c = append(*c, cloud.Sample{X: x, Y: y, Z: cfg.fieldFn(x, y)})
		}

		return nil
	}
}
