// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// impl_random.go — RandomUniform(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewSamples).
//   - Requires an RNG (WithSeed / WithRand), else ErrNeedRandSource.
//   - Draws n locations uniformly over the box; values from cfg.fieldFn.
//
// Determinism:
//   - Fixed seed ⇒ fixed draw sequence ⇒ identical clouds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/natgrid/cloud"
)

const (
	methodRandomUniform = "RandomUniform"
	minRandomSamples    = 1
)

// RandomUniform returns a Constructor that scatters n samples uniformly
// over the configured box.
func RandomUniform(n int) Constructor {
	return func(c *cloud.Cloud, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if n < minRandomSamples {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w",
				methodRandomUniform, n, minRandomSamples, ErrTooFewSamples)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomUniform, ErrNeedRandSource)
		}

		// 2) Draw locations in one deterministic pass.
		width := cfg.box.Max.X() - cfg.box.Min.X()
		height := cfg.box.Max.Y() - cfg.box.Min.Y()
		for i := 0; i < n; i++ {
			x := cfg.box.Min.X() + cfg.rng.Float64()*width
			y := cfg.box.Min.Y() + cfg.rng.Float64()*height
			*c = append(*c, cloud.Sample{X: x, Y: y, Z: cfg.fieldFn(x, y)})
		}

		return nil
	}
}
