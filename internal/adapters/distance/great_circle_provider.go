package distance

import (
	"context"
	"errors"
	"fmt"
	"geocalc/internal/domain"
	"geocalc/internal/platform/obs"
	"geocalc/internal/ports"
	"geocalc/internal/services"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var _ ports.DistanceMatrixProvider = (*GreatCircleProvider)(nil)

// GreatCircleProvider implements DistanceMatrixProvider on a spherical Earth.
//
// Locations are "lat,lon" strings in degrees. Duration assumes a constant
// straight-line speed. The provider holds no mutable state and is safe for
// concurrent use.
type GreatCircleProvider struct {
	speedMPS float64
	logger   zerolog.Logger
}

// Slowest accepted speed. Keeps the longest duration (half the globe) well inside int.
const MinSpeedMPS = 1e-3

func NewGreatCircleProvider(speedMPS float64, logger zerolog.Logger) (*GreatCircleProvider, error) {
	if !(speedMPS >= MinSpeedMPS) || math.IsInf(speedMPS, 1) {
		return nil, fmt.Errorf("great-circle provider: speed must be at least %v m/s, got %v", MinSpeedMPS, speedMPS)
	}

	return &GreatCircleProvider{speedMPS: speedMPS, logger: logger}, nil
}

// Parse "lat,lon" into a valid point.
func ParseLocation(s string) (domain.GeoPoint, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("parse location %q: want \"lat,lon\"", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse location %q: latitude: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse location %q: longitude: %w", s, err)
	}

	p := domain.NewGeoPoint(lat, lon)
	if !p.IsValid() {
		return domain.GeoPoint{}, fmt.Errorf("parse location %q: point %v is out of range", s, p)
	}
	return p, nil
}

// Delegate to the batched path so both lookups share parsing and timing.
func (g *GreatCircleProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	if origin == "" || destination == "" {
		return ports.DistanceResult{}, errors.New("get distance: origin and destination must be non-empty")
	}

	results, err := g.GetDistances(ctx, origin, []string{destination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distance %q -> %q: %w", origin, destination, err)
	}

	result, ok := results[destination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("get distance: no result for %q -> %q", origin, destination)
	}
	return result, nil
}

// Compute results from a single origin to many destinations.
// The first bad destination aborts the whole batch.
func (g *GreatCircleProvider) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, g.logger, "greatcircle.GetDistances")(&err)

	if origin == "" {
		return nil, errors.New("get distances: origin must be non-empty")
	}

	from, err := ParseLocation(origin)
	if err != nil {
		return nil, fmt.Errorf("get distances: %w", err)
	}

	results := make(map[string]ports.DistanceResult, len(destinations))
	for _, d := range destinations {
		to, err := ParseLocation(d)
		if err != nil {
			return nil, fmt.Errorf("get distances: destination %q: %w", d, err)
		}

		r, err := g.compute(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("get distances: destination %q: %w", d, err)
		}
		results[d] = r
	}

	g.logger.Debug().
		Str("origin", origin).
		Int("destinations", len(destinations)).
		Msg("great-circle matrix computed")

	return results, nil
}

func (g *GreatCircleProvider) compute(ctx context.Context, from, to domain.GeoPoint) (ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	meters, err := services.CalcDistance(from, to)
	if err != nil {
		return ports.DistanceResult{}, err
	}
	azimuth, err := services.CalcAzimuthDegree(from, to)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	return ports.DistanceResult{
		DistanceMeters:  meters,
		AzimuthDegrees:  azimuth,
		DurationSeconds: int(math.Round(meters / g.speedMPS)),
	}, nil
}
