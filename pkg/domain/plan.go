package domain

// Required top-level keys of the plan object. The renderer treats a plan
// missing any of these as a parse failure, never as a partial render.
const (
	KeyCulturalSignificance = "cultural_significance"
	KeyWeather              = "weather"
	KeyBestTimeToVisit      = "best_time_to_visit"
	KeyFlights              = "flights"
	KeyHotels               = "hotels"
	KeyItinerary            = "itinerary"
)

// PlanKeys lists the required keys in their fixed display order.
var PlanKeys = []string{
	KeyCulturalSignificance,
	KeyWeather,
	KeyBestTimeToVisit,
	KeyFlights,
	KeyHotels,
	KeyItinerary,
}

// FlightOption is a single synthetic flight record.
type FlightOption struct {
	Airline       string  `json:"airline" yaml:"airline" mapstructure:"airline"`
	From          string  `json:"from" yaml:"from" mapstructure:"from"`
	To            string  `json:"to" yaml:"to" mapstructure:"to"`
	Stops         int     `json:"stops" yaml:"stops" mapstructure:"stops"`
	DurationHours float64 `json:"duration_hours" yaml:"duration_hours" mapstructure:"duration_hours"`
	PriceUSD      float64 `json:"price_usd" yaml:"price_usd" mapstructure:"price_usd"`
	Notes         string  `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

// HotelOption is a single synthetic hotel record.
type HotelOption struct {
	Name             string  `json:"name" yaml:"name" mapstructure:"name"`
	Stars            int     `json:"stars" yaml:"stars" mapstructure:"stars"`
	PricePerNightUSD float64 `json:"price_per_night_usd" yaml:"price_per_night_usd" mapstructure:"price_per_night_usd"`
	Location         string  `json:"location,omitempty" yaml:"location,omitempty" mapstructure:"location"`
	Notes            string  `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

// ItineraryDay is one entry of the day-wise itinerary.
type ItineraryDay struct {
	Day         int    `json:"day" yaml:"day" mapstructure:"day"`
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
}

// TripPlan is the output contract of the planning agent: exactly six
// required top-level fields. The weather field may be a plain string or a
// structured snapshot, so it is kept as `any` here; the itinerary length
// should equal the requested days but is not enforced.
type TripPlan struct {
	CulturalSignificance string         `json:"cultural_significance" mapstructure:"cultural_significance"`
	Weather              any            `json:"weather" mapstructure:"weather"`
	BestTimeToVisit      string         `json:"best_time_to_visit" mapstructure:"best_time_to_visit"`
	Flights              []FlightOption `json:"flights" mapstructure:"flights"`
	Hotels               []HotelOption  `json:"hotels" mapstructure:"hotels"`
	Itinerary            []ItineraryDay `json:"itinerary" mapstructure:"itinerary"`
}

// PlanResult is what one planning run returns to the caller. Parsed is nil
// whenever ParseError is set; RawText is always preserved so that a parse
// failure can be debugged instead of silently discarded.
type PlanResult struct {
	RawText    string      `json:"raw_text"`
	Parsed     *TripPlan   `json:"parsed,omitempty"`
	ParseError string      `json:"parse_error,omitempty"`
	Transcript *Transcript `json:"transcript,omitempty"`
}

// OK reports whether the run produced a valid plan.
func (r *PlanResult) OK() bool {
	return r != nil && r.Parsed != nil && r.ParseError == ""
}
