// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn = DefaultNameFn  ("P0","P1",...)
//   • rng    = nil            (RandomScatter refuses to run without one)
//   • origin = 6.2442,-75.5812 (Medellín centre)
//   • step   = 0.01°          (~1.1 km at the equator)
//   • spread = 0.1°

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	nameFn    NameFn
	rng       *rand.Rand
	originLat float64
	originLon float64
	step      float64 // grid spacing, degrees, > 0
	spread    float64 // scatter half-width, degrees, > 0
}

const (
	defaultOriginLat = 6.2442
	defaultOriginLon = -75.5812
	defaultStep      = 0.01
	defaultSpread    = 0.1
)

// newBuilderConfig applies opts in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:    DefaultNameFn,
		originLat: defaultOriginLat,
		originLon: defaultOriginLon,
		step:      defaultStep,
		spread:    defaultSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
