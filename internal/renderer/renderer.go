// Package renderer maps a planning result onto the fixed display order the
// UI adapters share: cultural significance, weather, best time to visit,
// flights, hotels, itinerary. The mapping rule is pure; adapters decide how
// a view becomes HTML or markdown.
package renderer

import (
	"encoding/json"
	"fmt"

	"github.com/tripweaver/tripweaver/pkg/domain"
)

// Titles of the six sections, keyed by plan field.
var sectionTitles = map[string]string{
	domain.KeyCulturalSignificance: "City overview",
	domain.KeyWeather:              "Current weather & short forecast",
	domain.KeyBestTimeToVisit:      "Best time to visit",
	domain.KeyFlights:              "Example flight options",
	domain.KeyHotels:               "Example hotel options",
	domain.KeyItinerary:            "Day-wise itinerary",
}

// Section is one display block of a rendered plan. Exactly one of Text,
// Flights, Hotels or Days is populated, depending on the key.
type Section struct {
	Key     string
	Title   string
	Text    string
	Flights []domain.FlightOption
	Hotels  []domain.HotelOption
	Days    []domain.ItineraryDay
}

// View is what an adapter displays for one completed request. When Failed
// is set, Sections is empty and RawText carries the verbatim model output
// for the debug area; it is never discarded silently.
type View struct {
	Request       domain.TripRequest
	Failed        bool
	FailureNotice string
	RawText       string
	Transcript    *domain.Transcript
	Sections      []Section
}

// Render maps a plan result to its view. A result without a parsed plan
// renders as a failure view preserving the raw text.
func Render(req domain.TripRequest, result *domain.PlanResult) View {
	view := View{Request: req}
	if result == nil {
		view.Failed = true
		view.FailureNotice = "No plan was produced."
		return view
	}

	view.RawText = result.RawText
	view.Transcript = result.Transcript

	if !result.OK() {
		view.Failed = true
		view.FailureNotice = fmt.Sprintf("The model's answer could not be used: %s", result.ParseError)
		return view
	}

	plan := result.Parsed
	view.Sections = []Section{
		{Key: domain.KeyCulturalSignificance, Title: sectionTitles[domain.KeyCulturalSignificance], Text: plan.CulturalSignificance},
		{Key: domain.KeyWeather, Title: sectionTitles[domain.KeyWeather], Text: weatherText(plan.Weather)},
		{Key: domain.KeyBestTimeToVisit, Title: sectionTitles[domain.KeyBestTimeToVisit], Text: plan.BestTimeToVisit},
		{Key: domain.KeyFlights, Title: sectionTitles[domain.KeyFlights], Flights: plan.Flights},
		{Key: domain.KeyHotels, Title: sectionTitles[domain.KeyHotels], Hotels: plan.Hotels},
		{Key: domain.KeyItinerary, Title: sectionTitles[domain.KeyItinerary], Days: plan.Itinerary},
	}
	return view
}

// weatherText flattens the weather field, which the contract allows to be
// either a summary string or a structured snapshot.
func weatherText(weather any) string {
	switch w := weather.(type) {
	case string:
		return w
	case nil:
		return "No weather information available."
	default:
		data, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", w)
		}
		return string(data)
	}
}
