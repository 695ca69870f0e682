package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance, in kilometres.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// Distance returns the great-circle distance between a and b in kilometres,
// computed with the haversine formula.
//
// Steps:
//  1. Convert latitudes and longitudes to radians.
//  2. dlat = lat2-lat1, dlon = lon2-lon1.
//  3. h = sin²(dlat/2) + cos(lat1)·cos(lat2)·sin²(dlon/2), clamped to [0,1].
//  4. c = 2·atan2(√h, √(1-h)).
//  5. EarthRadiusKm·c.
//
// Distance(a, b) == Distance(b, a) and Distance(a, a) == 0.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	lat1 := a.Lat * degToRad
	lon1 := a.Lon * degToRad
	lat2 := b.Lat * degToRad
	lon2 := b.Lon * degToRad

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h slightly outside [0,1] for antipodal points;
	// √(1-h) would then be NaN.
	h = math.Min(math.Max(h, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
