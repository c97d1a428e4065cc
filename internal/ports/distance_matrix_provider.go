package ports

import "context"

// DistanceProvider that can also answer one-to-many lookups.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return results keyed by destination, as passed in.
	GetDistances(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
}
