package ports

import "context"

// Distance, initial bearing and travel duration between two locations.
type DistanceResult struct {
	DistanceMeters  float64
	AzimuthDegrees  float64
	DurationSeconds int
}

// Contract for retrieving travel distance and duration between locations.
type DistanceProvider interface {
	// Return distance, bearing and estimated duration between two locations.
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}
