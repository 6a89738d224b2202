// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// doc.go — package overview for synthetic sample-cloud construction.
//
// The builder package assembles deterministic sample clouds for examples,
// tests, and benchmarks: uniform random scatters, jittered lattices, rings,
// corner squares, and deliberately degenerate collinear runs. Every
// constructor writes into one shared cloud, so fixtures compose:
//
//	c, err := builder.BuildCloud(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.JitteredGrid(12, 12),
//	    builder.Ring(24, 30),
//	)
//
// Design contract (strict):
//   - One orchestrator: BuildCloud(bopts, cons...). Resolves cfg, runs cons
//     in order, appending to a single cloud.Cloud.
//   - Determinism: same options/seed and constructor order ⇒ identical
//     clouds, sample for sample.
//   - Values come from the configured field function (default: the tilted
//     plane 2x − 3y + 5), so linear-precision checks have a ready fixture.
//   - Constructors return sentinel errors and never panic; validation
//     panics are confined to option constructors (WithX...).
//
// AI-Hints:
//   - Stochastic constructors (RandomUniform, JitteredGrid with a non-zero
//     jitter) require WithSeed or WithRand; they fail with
//     ErrNeedRandSource otherwise.
//   - Collinear exists to exercise triangulation failure paths; feed its
//     output to mesh.Triangulate to observe ErrNoTriangulation.
//   - WithBox rescales every constructor; WithField swaps the value field.
package builder
