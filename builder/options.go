// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the index → name generator for generated points.
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithOrigin sets the anchor of Grid (top-left cell) and the centre of
// RandomScatter. Coordinates are not validated here; core does that when
// the graph is built with core.WithCoordinateValidation.
func WithOrigin(lat, lon float64) BuilderOption {
	return func(c *builderConfig) {
		c.originLat = lat
		c.originLon = lon
	}
}

// WithStep sets the grid spacing in degrees. Panics if deg <= 0.
func WithStep(deg float64) BuilderOption {
	if !(deg > 0) {
		panic("builder: WithStep(deg) requires deg > 0")
	}
	return func(c *builderConfig) { c.step = deg }
}

// WithSpread sets the scatter half-width in degrees. Panics if deg <= 0.
func WithSpread(deg float64) BuilderOption {
	if !(deg > 0) {
		panic("builder: WithSpread(deg) requires deg > 0")
	}
	return func(c *builderConfig) { c.spread = deg }
}

// WithRand provides an explicit RNG for RandomScatter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
