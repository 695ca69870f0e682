// Package geo provides the geographic primitives used by geograph: the
// immutable Point value and the great-circle (haversine) distance between
// two points.
//
// Overview:
//
//   - Point holds a display name and WGS84 latitude/longitude in degrees.
//   - Distance returns the haversine distance in kilometres on a sphere of
//     radius EarthRadiusKm. It is symmetric, non-negative, and zero for
//     identical coordinates.
//   - Validate reports coordinates outside [-90,90] × [-180,180]. Distance
//     itself never validates; it is a pure function of its inputs.
//
// Complexity:
//
//   - Distance: O(1), no allocations.
//
// Errors (sentinel):
//
//   - ErrLatitudeOutOfRange:  latitude outside [-90, 90].
//   - ErrLongitudeOutOfRange: longitude outside [-180, 180].
//
// Example:
//
//	a := geo.NewPoint("D1 Centro", 6.2442, -75.5812)
//	b := geo.NewPoint("D1 Poblado", 6.2084, -75.5687)
//	fmt.Printf("%.2f km\n", geo.Distance(a, b))
package geo
