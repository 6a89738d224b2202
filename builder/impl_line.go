// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// impl_line.go — Collinear(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewSamples).
//   - Emits n samples evenly spaced on the box diagonal, minimum corner to
//     maximum corner. No RNG involved.
//
// A collinear cloud admits no triangulation; this constructor exists so
// failure paths (mesh.ErrNoTriangulation and everything downstream of it)
// have a first-class fixture instead of ad-hoc literals.

package builder

import (
	"fmt"

	"github.com/katalvlaran/natgrid/cloud"
)

const (
	methodCollinear  = "Collinear"
	minLinearSamples = 2
)

// Collinear returns a Constructor that emits n samples on the box
// diagonal.
func Collinear(n int) Constructor {
	return func(c *cloud.Cloud, cfg builderConfig) error {
		if n < minLinearSamples {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodCollinear, n, minLinearSamples, ErrTooFewSamples)
		}

		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)
			x := cfg.box.Min.X() + t*(cfg.box.Max.X()-cfg.box.Min.X())
			y := cfg.box.Min.Y() + t*(cfg.box.Max.Y()-cfg.box.Min.Y())
			*c = append(*c, cloud.Sample{X: x, Y: y, Z: cfg.fieldFn(x, y)})
		}

		return nil
	}
}
