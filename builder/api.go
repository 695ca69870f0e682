// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

// Constructor appends points to g using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity:
//   - Applying constructors that add N points in total: O(N²) distance
//     evaluations, dominated by core's complete-graph maintenance.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addPoint inserts p and tags core failures with the constructor name.
func addPoint(g *core.Graph, method string, p geo.Point) error {
	if _, err := g.AddPoint(p); err != nil {
		return fmt.Errorf("%s: AddPoint(%s): %w: %w", method, p.Name, ErrConstructFailed, err)
	}

	return nil
}
