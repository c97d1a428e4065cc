package services

import (
	"errors"
	"geocalc/internal/domain"
	"strings"
)

// Single error kind for every rejected calculator input.
var ErrInvalidArgument = errors.New("invalid argument")

// Reports every invalid point passed to one calculator call, in input order.
type InvalidPointsError struct {
	Points []domain.GeoPoint
}

func (e *InvalidPointsError) Error() string {
	msgs := make([]string, 0, len(e.Points))
	for _, p := range e.Points {
		msgs = append(msgs, "point "+p.String()+" is invalid")
	}
	return ErrInvalidArgument.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *InvalidPointsError) Unwrap() error { return ErrInvalidArgument }

// Collect all invalid points rather than stopping at the first one.
func validatePoints(points ...domain.GeoPoint) error {
	var invalid []domain.GeoPoint
	for _, p := range points {
		if !p.IsValid() {
			invalid = append(invalid, p)
		}
	}

	if len(invalid) > 0 {
		return &InvalidPointsError{Points: invalid}
	}
	return nil
}
