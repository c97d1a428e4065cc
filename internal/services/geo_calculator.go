package services

import (
	"fmt"
	"geocalc/internal/domain"
	"math"
)

const (
	EarthRadiusM             = 6371e3
	DegreeToRadianConversion = math.Pi / 180
	RadianToDegreeConversion = 180 / math.Pi
)

func DegreeToRadian(degree float64) float64 {
	return degree * DegreeToRadianConversion
}

func RadianToDegree(radian float64) float64 {
	return radian * RadianToDegreeConversion
}

// Return the great-circle distance in meters between two points (haversine, atan2 form).
func CalcDistance(p1, p2 domain.GeoPoint) (float64, error) {
	if err := validatePoints(p1, p2); err != nil {
		return 0, fmt.Errorf("calc distance: %w", err)
	}

	lat1 := DegreeToRadian(p1.Lat)
	lat2 := DegreeToRadian(p2.Lat)
	halfDLat := DegreeToRadian(p2.Lat-p1.Lat) / 2
	halfDLon := DegreeToRadian(p2.Lon-p1.Lon) / 2

	a := math.Sin(halfDLat)*math.Sin(halfDLat) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(halfDLon)*math.Sin(halfDLon)
	// Rounding can push a past 1 for antipodal points.
	a = math.Min(a, 1)

	return 2 * EarthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)), nil
}

// Return the initial bearing from p1 towards p2 in degrees, within [0, 360).
// Coincident points yield 0.
func CalcAzimuthDegree(p1, p2 domain.GeoPoint) (float64, error) {
	if err := validatePoints(p1, p2); err != nil {
		return 0, fmt.Errorf("calc azimuth: %w", err)
	}

	lat1 := DegreeToRadian(p1.Lat)
	lat2 := DegreeToRadian(p2.Lat)
	dLon := DegreeToRadian(p2.Lon) - DegreeToRadian(p1.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return normalizeAzimuth(RadianToDegree(math.Atan2(y, x))), nil
}

// Return the point halfway along the great circle between p1 and p2.
func CalcMidpoint(p1, p2 domain.GeoPoint) (domain.GeoPoint, error) {
	if err := validatePoints(p1, p2); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("calc midpoint: %w", err)
	}

	lat1 := DegreeToRadian(p1.Lat)
	lat2 := DegreeToRadian(p2.Lat)
	lon1 := DegreeToRadian(p1.Lon)
	dLon := DegreeToRadian(p2.Lon) - lon1

	bx := math.Cos(lat2) * math.Cos(dLon)
	by := math.Cos(lat2) * math.Sin(dLon)

	lat := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	lon := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return domain.NewGeoPoint(RadianToDegree(lat), normalizeLongitude(RadianToDegree(lon))), nil
}

// Project a point distanceM meters from start along the initial bearing azimuthDeg.
//
// Distance and azimuth are checked before the start point, so a caller passing
// several bad arguments sees the distance error first.
func CalcDestination(start domain.GeoPoint, azimuthDeg, distanceM float64) (domain.GeoPoint, error) {
	if !(distanceM >= 0) || math.IsInf(distanceM, 1) {
		return domain.GeoPoint{}, fmt.Errorf("calc destination: %w: invalid distance: %v", ErrInvalidArgument, distanceM)
	}
	if !(azimuthDeg >= 0 && azimuthDeg <= 360) {
		return domain.GeoPoint{}, fmt.Errorf("calc destination: %w: invalid azimuth: %v", ErrInvalidArgument, azimuthDeg)
	}
	if err := validatePoints(start); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("calc destination: %w", err)
	}

	delta := distanceM / EarthRadiusM
	lat := DegreeToRadian(start.Lat)
	lon := DegreeToRadian(start.Lon)
	azimuth := DegreeToRadian(azimuthDeg)

	sinDestLat := math.Sin(lat)*math.Cos(delta) + math.Cos(lat)*math.Sin(delta)*math.Cos(azimuth)
	// Rounding can push sinDestLat past ±1 for paths ending at a pole.
	sinDestLat = math.Max(-1, math.Min(1, sinDestLat))
	destLat := math.Asin(sinDestLat)
	destLon := lon + math.Atan2(
		math.Sin(azimuth)*math.Sin(delta)*math.Cos(lat),
		math.Cos(delta)-math.Sin(lat)*math.Sin(destLat),
	)

	return domain.NewGeoPoint(RadianToDegree(destLat), normalizeLongitude(RadianToDegree(destLon))), nil
}

// Map degrees into [0, 360).
func normalizeAzimuth(deg float64) float64 {
	return math.Mod(deg+360, 360)
}

// Map degrees into [-180, 180), wrapping across the antimeridian.
func normalizeLongitude(deg float64) float64 {
	return math.Mod(deg+540, 360) - 180
}
