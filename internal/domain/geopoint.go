package domain

import (
	"fmt"
	"math"
)

// Coordinate tolerance used by Equals to absorb drift from trig round-trips.
const PointEpsilon = 1e-4

// Represents a location on the sphere as latitude/longitude in degrees.
// Range is not enforced on construction; consumers check IsValid.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Lat: lat, Lon: lon}
}

// Report whether |lat| <= 90 and |lon| <= 180. NaN coordinates are invalid.
func (p GeoPoint) IsValid() bool {
	return math.Abs(p.Lat) <= 90 && math.Abs(p.Lon) <= 180
}

// Approximate equality: both coordinate deltas strictly below PointEpsilon.
func (p GeoPoint) Equals(other GeoPoint) bool {
	return math.Abs(p.Lat-other.Lat) < PointEpsilon && math.Abs(p.Lon-other.Lon) < PointEpsilon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat, p.Lon)
}
