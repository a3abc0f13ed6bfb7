// Package catalog provides the synthetic flight and hotel lookup tools.
//
// Both lookups are pure and deterministic: for any non-empty city they
// return the same fixed-size list, parameterized only by echoing the city
// into descriptive fields. They exist so the agent has tool-call material;
// a real search integration would replace the bodies while keeping the
// signatures.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/registry"
)

const (
	// FlightsToolName is the dispatch name of the flight lookup tool.
	FlightsToolName = "list_flights"
	// HotelsToolName is the dispatch name of the hotel lookup tool.
	HotelsToolName = "list_hotels"
)

// ListFlights returns example flight options to the given destination city.
func ListFlights(city string) []domain.FlightOption {
	return []domain.FlightOption{
		{
			Airline:       "Example Air",
			From:          "Your Home City",
			To:            city,
			Stops:         0,
			DurationHours: 7,
			PriceUSD:      650,
			Notes:         "Morning non-stop flight with a meal included.",
		},
		{
			Airline:       "Sample Airlines",
			From:          "Your Home City",
			To:            city,
			Stops:         1,
			DurationHours: 10,
			PriceUSD:      520,
			Notes:         "One layover, budget-friendly option.",
		},
		{
			Airline:       "Budget Wings",
			From:          "Your Home City",
			To:            city,
			Stops:         2,
			DurationHours: 13,
			PriceUSD:      430,
			Notes:         "Ultra-budget with basic amenities.",
		},
	}
}

// ListHotels returns example hotel options in the given destination city.
func ListHotels(city string) []domain.HotelOption {
	return []domain.HotelOption{
		{
			Name:             fmt.Sprintf("%s Central Comfort Hotel", city),
			Stars:            3,
			PricePerNightUSD: 90,
			Location:         "Central area, good public transport",
			Notes:            "Great value, basic but clean rooms.",
		},
		{
			Name:             fmt.Sprintf("%s Riverside Boutique", city),
			Stars:            4,
			PricePerNightUSD: 150,
			Location:         "Scenic neighborhood near main attractions",
			Notes:            "Stylish boutique hotel with breakfast included.",
		},
		{
			Name:             fmt.Sprintf("Luxury Grand %s", city),
			Stars:            5,
			PricePerNightUSD: 260,
			Location:         "Premium district",
			Notes:            "High-end amenities, spa, and concierge services.",
		},
	}
}

func cityParams() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"city": {
				Type:        "string",
				Description: "Destination city name, e.g. Paris",
			},
		},
		Required: []string{"city"},
	}
}

func cityArg(args map[string]any) (string, error) {
	city, _ := args["city"].(string)
	if strings.TrimSpace(city) == "" {
		return "", fmt.Errorf("city argument must be a non-empty string")
	}
	return strings.TrimSpace(city), nil
}

// FlightsTool returns the flight lookup wired for the dispatch table.
func FlightsTool() registry.Tool {
	return registry.Tool{
		Name:        FlightsToolName,
		Description: "Returns example flight options to the given destination city.",
		Parameters:  cityParams(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			city, err := cityArg(args)
			if err != nil {
				return nil, err
			}
			return ListFlights(city), nil
		},
	}
}

// HotelsTool returns the hotel lookup wired for the dispatch table.
func HotelsTool() registry.Tool {
	return registry.Tool{
		Name:        HotelsToolName,
		Description: "Returns example hotel options in the given destination city.",
		Parameters:  cityParams(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			city, err := cityArg(args)
			if err != nil {
				return nil, err
			}
			return ListHotels(city), nil
		},
	}
}
