// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) sits at (origin.lat - r·step, origin.lon + c·step):
//     rows go south, columns go east.
//   • Points are appended in row-major order; cell (r,c) gets index
//     offset + r·cols + c, named by cfg.nameFn(r·cols + c).
//
// Complexity:
//   • O(rows·cols) points; O((rows·cols)²) edges maintained by core.

package builder

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := geo.NewPoint(
					cfg.nameFn(r*cols+c),
					cfg.originLat-float64(r)*cfg.step,
					cfg.originLon+float64(c)*cfg.step,
				)
				if err := addPoint(g, methodGrid, p); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
