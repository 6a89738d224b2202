// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   - Prefer WithSeed for reproducible stochastic clouds.
//   - WithBox rescales every constructor into the given frame.
//   - WithField swaps the value surface; keep it smooth if the cloud will
//     feed interpolation-accuracy assertions.

package builder

import (
	"math/rand"

	"github.com/paulmach/orb"
)

// BuilderOption customizes cloud construction by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithBox sets the construction frame. Panics on an empty or inverted box.
func WithBox(b orb.Bound) BuilderOption {
	if b.Max.X() <= b.Min.X() || b.Max.Y() <= b.Min.Y() {
		panic("builder: WithBox(empty)")
	}
	return func(c *builderConfig) {
		c.box = b
	}
}

// WithField sets the value field sampled at each generated location.
// Panics on nil.
func WithField(fn func(x, y float64) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithField(nil)")
	}
	return func(c *builderConfig) {
		c.fieldFn = fn
	}
}

// WithJitter sets the lattice displacement fraction for JitteredGrid.
// Panics outside [0, 0.5); 0 yields an exact lattice with no RNG needed.
func WithJitter(j float64) BuilderOption {
	if j < 0 || j >= 0.5 {
		panic("builder: WithJitter outside [0, 0.5)")
	}
	return func(c *builderConfig) {
		c.jitter = j
	}
}
