package domain

import (
	"fmt"
	"strings"
)

// TripRequest is a single user submission. It is created per request,
// consumed once and never mutated.
type TripRequest struct {
	City string `json:"city" yaml:"city" mapstructure:"city"`
	Days int    `json:"days" yaml:"days" mapstructure:"days"`
}

// Validate checks the request invariants: a non-empty city and at least
// one day. Free-text geocoding of the city is delegated upstream.
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("%w: city must not be empty", ErrInvalidRequest)
	}
	if r.Days < 1 {
		return fmt.Errorf("%w: days must be >= 1, got %d", ErrInvalidRequest, r.Days)
	}
	return nil
}

// Normalized returns a copy with surrounding whitespace stripped from the city.
func (r TripRequest) Normalized() TripRequest {
	r.City = strings.TrimSpace(r.City)
	return r
}
