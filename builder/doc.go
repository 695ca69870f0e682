// SPDX-License-Identifier: MIT
// Package builder assembles core.Graph fixtures from geographic points.
//
// A Constructor appends points to a graph; BuildGraph creates the graph,
// resolves builder options and runs constructors in order. Because
// core.Graph keeps itself complete on every insertion, constructors only
// decide WHICH points are added and in WHAT order.
//
// Constructors:
//
//	Points(pts...)            – the given points, verbatim, in order.
//	Grid(rows, cols)          – rows×cols lattice around the configured origin,
//	                            spaced by the configured step (degrees).
//	RandomScatter(n)          – n points uniformly inside the box
//	                            origin ± spread; requires WithSeed/WithRand.
//
// Options:
//
//	WithNameScheme(fn)        – index → point name (default "P0","P1",...).
//	WithOrigin(lat, lon)      – centre/anchor of generated layouts.
//	WithStep(deg)             – grid spacing; must be > 0.
//	WithSpread(deg)           – half-width of the scatter box; must be > 0.
//	WithSeed(seed)/WithRand(r)– RNG for RandomScatter.
//
// Determinism: equal options, seed and constructor order ⇒ identical graphs.
//
// Errors:
//
//	ErrTooFewVertices  – size parameter below its minimum.
//	ErrNeedRandSource  – RandomScatter without an RNG.
//	ErrConstructFailed – nil constructor, or a core insertion failed.
package builder
