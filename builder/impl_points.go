// SPDX-License-Identifier: MIT
// Package: geograph/builder
//
// impl_points.go — Points(pts...) constructor.
//
// Contract:
//   • Appends every point in argument order; names are kept as given.
//   • An empty argument list is a no-op.
//   • Core rejections (coordinate validation) surface as ErrConstructFailed
//     wrapping the core error.

package builder

import (
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

const methodPoints = "Points"

// Points returns a Constructor that appends pts in order.
func Points(pts ...geo.Point) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pts {
			if err := addPoint(g, methodPoints, p); err != nil {
				return err
			}
		}

		return nil
	}
}
