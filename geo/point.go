package geo

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Point.Validate.
var (
	// ErrLatitudeOutOfRange indicates a latitude outside [-90, 90] degrees.
	ErrLatitudeOutOfRange = errors.New("geo: latitude out of range")

	// ErrLongitudeOutOfRange indicates a longitude outside [-180, 180] degrees.
	ErrLongitudeOutOfRange = errors.New("geo: longitude out of range")
)

// Coordinate bounds in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Point is a named geographic location. Names are labels, not identities:
// two points may share a name. Point is a value type and is never mutated
// after construction.
type Point struct {
	// Name is a human-readable label (e.g. "D1 Centro").
	Name string `yaml:"name" json:"name"`

	// Lat is the latitude in degrees, positive north.
	Lat float64 `yaml:"lat" json:"lat"`

	// Lon is the longitude in degrees, positive east.
	Lon float64 `yaml:"lon" json:"lon"`
}

// NewPoint returns a Point with the given name and coordinates.
func NewPoint(name string, lat, lon float64) Point {
	return Point{Name: name, Lat: lat, Lon: lon}
}

// Validate checks that the coordinates lie inside the WGS84 ranges.
// NaN coordinates fail both comparisons and are rejected as well.
//
// Complexity: O(1).
func (p Point) Validate() error {
	if !(p.Lat >= MinLatitude && p.Lat <= MaxLatitude) {
		return fmt.Errorf("%w: %q lat=%g", ErrLatitudeOutOfRange, p.Name, p.Lat)
	}
	if !(p.Lon >= MinLongitude && p.Lon <= MaxLongitude) {
		return fmt.Errorf("%w: %q lon=%g", ErrLongitudeOutOfRange, p.Name, p.Lon)
	}

	return nil
}

// String implements fmt.Stringer, e.g. `D1 Centro (6.2442000, -75.5812000)`.
func (p Point) String() string {
	return fmt.Sprintf("%s (%.7f, %.7f)", p.Name, p.Lat, p.Lon)
}
