// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels stay bare.
//   - Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewSamples indicates a numeric parameter (n, nx, ny) below the
// minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewSamples) { /* fix the count */ }.
var ErrTooFewSamples = errors.New("builder: sample count too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// seeded RNG; set WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRadius indicates a non-positive or non-finite ring radius.
var ErrBadRadius = errors.New("builder: radius must be positive and finite")

// ErrBadSpan indicates a non-positive or non-finite square span.
var ErrBadSpan = errors.New("builder: span must be positive and finite")

// ErrConstructFailed indicates the orchestrator could not run a
// constructor at all (for example, a nil Constructor in the chain).
var ErrConstructFailed = errors.New("builder: construction failed")
