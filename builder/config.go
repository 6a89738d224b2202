// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng     = nil (pure constructors only, unless seeded)
//   - box     = [0,0]..[100,100]
//   - fieldFn = tilted plane 2x − 3y + 5
//   - jitter  = DefaultJitter (0.25 of the lattice spacing)

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// DefaultJitter is the lattice displacement used by JitteredGrid when no
// WithJitter override is given, as a fraction of the cell spacing. Staying
// below 0.5 keeps every sample inside its own cell, so the lattice never
// folds onto itself.
const DefaultJitter = 0.25

// Plane coefficients of the default value field.
const (
	planeA = 2.0  // x slope
	planeB = -3.0 // y slope
	planeC = 5.0  // offset
)

// defaultBoxMax bounds the default construction frame on both axes.
const defaultBoxMax = 100.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
	// Construction frame; every constructor scales into it.
	box orb.Bound
	// Value field sampled at each generated location.
	fieldFn func(x, y float64) float64
	// Lattice displacement fraction for JitteredGrid, in [0, 0.5).
	jitter float64
}

// planeField is the default value field: a tilted plane, handy because a
// natural-neighbour estimator reproduces it (near) exactly.
func planeField(x, y float64) float64 { return planeA*x + planeB*y + planeC }

// newBuilderConfig resolves options over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		box:     orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{defaultBoxMax, defaultBoxMax}},
		fieldFn: planeField,
		jitter:  DefaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
