package schema

import "github.com/tripweaver/tripweaver/pkg/domain"

// PlanSchema returns the schema for the agent's final answer: six required
// top-level fields. The weather field accepts either a summary string or a
// structured snapshot object.
func PlanSchema() Schema {
	return Schema{
		domain.KeyCulturalSignificance: String(),
		domain.KeyWeather:              OneOf(String(), Object()),
		domain.KeyBestTimeToVisit:      String(),
		domain.KeyFlights:              Slice(Object()),
		domain.KeyHotels:               Slice(Object()),
		domain.KeyItinerary:            Slice(Object()),
	}
}

// ValidatePlan checks a decoded model answer against the plan contract.
// A partial object is a validation failure, never a partial success.
func ValidatePlan(data map[string]any) error {
	return Validate(PlanSchema(), data)
}
