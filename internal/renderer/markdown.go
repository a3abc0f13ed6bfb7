package renderer

import (
	"fmt"
	"strings"
)

// Markdown renders a view as a markdown document, used by the CLI (through
// glamour) and usable verbatim anywhere else.
func Markdown(v View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trip plan: %s (%d days)\n\n", v.Request.City, v.Request.Days)

	if v.Failed {
		fmt.Fprintf(&b, "**%s**\n\n", v.FailureNotice)
		if v.RawText != "" {
			b.WriteString("## Raw model output (for debugging)\n\n```\n")
			b.WriteString(v.RawText)
			b.WriteString("\n```\n")
		}
		return b.String()
	}

	for i, s := range v.Sections {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Title)
		switch {
		case len(s.Flights) > 0:
			b.WriteString("| Airline | From | To | Stops | Hours | Price (USD) | Notes |\n")
			b.WriteString("|---|---|---|---|---|---|---|\n")
			for _, f := range s.Flights {
				fmt.Fprintf(&b, "| %s | %s | %s | %d | %.0f | %.0f | %s |\n",
					f.Airline, f.From, f.To, f.Stops, f.DurationHours, f.PriceUSD, f.Notes)
			}
			b.WriteString("\n")
		case len(s.Hotels) > 0:
			b.WriteString("| Hotel | Stars | Price/night (USD) | Location | Notes |\n")
			b.WriteString("|---|---|---|---|---|\n")
			for _, h := range s.Hotels {
				fmt.Fprintf(&b, "| %s | %d | %.0f | %s | %s |\n",
					h.Name, h.Stars, h.PricePerNightUSD, h.Location, h.Notes)
			}
			b.WriteString("\n")
		case len(s.Days) > 0:
			for _, d := range s.Days {
				fmt.Fprintf(&b, "**Day %d: %s**: %s\n\n", d.Day, d.Title, d.Description)
			}
		case s.Key == "flights" || s.Key == "hotels" || s.Key == "itinerary":
			b.WriteString("_Nothing was suggested._\n\n")
		default:
			b.WriteString(s.Text)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
