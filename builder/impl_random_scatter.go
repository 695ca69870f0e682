// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// impl_random_scatter.go — RandomScatter(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); cfg.rng != nil (else ErrNeedRandSource).
//   • Each point is drawn uniformly from
//     [origin.lat-spread, origin.lat+spread) × [origin.lon-spread, origin.lon+spread).
//   • Latitude is drawn before longitude for every point, so a fixed seed
//     reproduces the same sequence.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

const (
	methodRandomScatter = "RandomScatter"
	minScatterPoints    = 1
)

// RandomScatter returns a Constructor that appends n random points.
func RandomScatter(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minScatterPoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomScatter, n, minScatterPoints, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomScatter, ErrNeedRandSource)
		}
		width := 2 * cfg.spread
		for i := 0; i < n; i++ {
			lat := cfg.originLat - cfg.spread + cfg.rng.Float64()*width
			lon := cfg.originLon - cfg.spread + cfg.rng.Float64()*width
			if err := addPoint(g, methodRandomScatter, geo.NewPoint(cfg.nameFn(i), lat, lon)); err != nil {
				return err
			}
		}

		return nil
	}
}
