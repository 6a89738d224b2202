// SPDX-License-Identifier: MIT
// Package: natgrid/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCloud(bopts, cons...). Resolves cfg, runs cons
//     in order, appending into a single cloud.
//   - All public factories are declared in impl_*.go files, one topology
//     per file.
//   - Determinism: same options/seed and constructor order ⇒ identical
//     clouds, sample for sample.

package builder

import (
	"fmt"

	"github.com/katalvlaran/natgrid/cloud"
)

// Constructor appends samples to the cloud under the resolved config.
// Constructors MUST validate parameters early, return sentinel errors, and
// preserve determinism for a fixed config and call order.
type Constructor func(c *cloud.Cloud, cfg builderConfig) error

// BuildCloud resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildCloud: %w" and returned immediately; no partial cleanup is
// attempted.
func BuildCloud(bopts []BuilderOption, cons ...Constructor) (cloud.Cloud, error) {
	cfg := newBuilderConfig(bopts...)

	var c cloud.Cloud
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCloud: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&c, cfg); err != nil {
			return nil, fmt.Errorf("BuildCloud: %w", err)
		}
	}

	return c, nil
}
