// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// impl_corners.go — FourCorners(span) constructor.
//
// Contract:
//   - span > 0 and finite (else ErrBadSpan).
//   - Emits exactly four samples at the corners of a span×span square
//     anchored at the box minimum, in the fixed order (0,0), (span,0),
//     (0,span), (span,span) relative to that anchor. No RNG involved.
//
// Four corners form the smallest cloud where every sample sits on the
// hull, which makes them the canonical fixture for centre-blending and
// hull-clipping demonstrations.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/natgrid/cloud"
)

const methodFourCorners = "FourCorners"

// FourCorners returns a Constructor that emits the four corners of a
// span×span square anchored at the box minimum.
func FourCorners(span float64) Constructor {
	return func(c *cloud.Cloud, cfg builderConfig) error {
		if !(span > 0) || math.IsInf(span, 0) {
			return fmt.Errorf("%s: span=%g: %w", methodFourCorners, span, ErrBadSpan)
		}

		ox, oy := cfg.box.Min.X(), cfg.box.Min.Y()
		for _, d := range [4][2]float64{{0, 0}, {span, 0}, {0, span}, {span, span}} {
			x, y := ox+d[0], oy+d[1]
			*c = append(*c, cloud.Sample{X: x, Y: y, Z: cfg.fieldFn(x, y)})
		}

		return nil
	}
}
