// Package weather provides the real-time weather lookup tool.
//
// The lookup degrades instead of failing: with no API key configured it
// returns a fixed advisory string without touching the network, and any
// upstream or transport failure is converted into a fallback string that
// embeds the requested city. The agent therefore always has something to
// reason over. Calls are single-attempt with an explicit timeout.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/tripweaver/tripweaver/pkg/registry"
)

// DefaultBaseURL is the OpenWeather API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// DefaultTimeout bounds each upstream call. The source this replaces
// inherited the client default silently; here it is explicit and
// configurable via WithTimeout.
const DefaultTimeout = 10 * time.Second

// ToolName is the dispatch name of the weather lookup tool.
const ToolName = "lookup_weather"

// Outlook condenses the next ~24 hours of forecast data.
type Outlook struct {
	MinC      float64 `json:"min_c"`
	MaxC      float64 `json:"max_c"`
	Condition string  `json:"condition"` // dominant condition across the window
}

// Snapshot is the structured result of a successful lookup.
type Snapshot struct {
	City       string  `json:"city"`
	TempC      float64 `json:"temp_c"`
	FeelsLikeC float64 `json:"feels_like_c"`
	Condition  string  `json:"condition"`
	Outlook    Outlook `json:"outlook"`
}

// Result is what a lookup returns. Summary is always set: a human-readable
// report when Live, a fallback advisory otherwise. Shape is stable across
// calls; only the live data fields vary.
type Result struct {
	Live     bool      `json:"live"`
	Summary  string    `json:"summary"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// Client looks up current conditions and a short-range forecast.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      Cache
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream API root (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-call timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCache enables snapshot caching for live lookups.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a weather client. An empty apiKey is valid: every lookup
// then returns the keyless advisory without a network call.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const keylessAdvisory = "Real-time weather is unavailable because no weather API key is configured. " +
	"You may still provide general, non-real-time weather expectations for the season."

func unavailableFallback(city string, reason error) string {
	return fmt.Sprintf("Could not fetch real-time weather data for %s. Reason: %v. "+
		"You may still provide general guidance based on the typical climate of the destination.", city, reason)
}

// Lookup returns the current conditions and a condensed ~24h outlook for
// the city. It never returns an error: failures degrade to fallback text.
func (c *Client) Lookup(ctx context.Context, city string) Result {
	if c.apiKey == "" {
		return Result{Live: false, Summary: keylessAdvisory}
	}

	if c.cache != nil {
		if snap, ok := c.cache.Get(ctx, city); ok {
			c.logger.Debug("weather cache hit", "city", city)
			return Result{Live: true, Summary: summarize(snap), Snapshot: snap}
		}
	}

	snap, err := c.fetch(ctx, city)
	if err != nil {
		c.logger.Warn("weather lookup degraded to fallback", "city", city, "error", err)
		return Result{Live: false, Summary: unavailableFallback(city, err)}
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, city, snap); err != nil {
			c.logger.Warn("weather cache write failed", "city", city, "error", err)
		}
	}

	return Result{Live: true, Summary: summarize(snap), Snapshot: snap}
}

// Upstream wire shapes (OpenWeather current weather + 5-day/3-hour forecast).

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
}

type forecastResponse struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *Client) fetch(ctx context.Context, city string) (*Snapshot, error) {
	var current currentResponse
	if err := c.get(ctx, "/weather", url.Values{"q": {city}}, &current); err != nil {
		return nil, err
	}
	if len(current.Weather) == 0 {
		return nil, fmt.Errorf("upstream returned no conditions for %q", city)
	}

	snap := &Snapshot{
		City:       city,
		TempC:      current.Main.Temp,
		FeelsLikeC: current.Main.FeelsLike,
		Condition:  capitalize(current.Weather[0].Description),
	}

	// Short forecast: 8 entries at 3h steps cover roughly 24 hours.
	var forecast forecastResponse
	if err := c.get(ctx, "/forecast", url.Values{"q": {city}, "cnt": {"8"}}, &forecast); err != nil {
		return nil, err
	}
	snap.Outlook = condense(forecast)

	return snap, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// condense reduces the forecast window to min/max temperature and the most
// frequent condition.
func condense(f forecastResponse) Outlook {
	if len(f.List) == 0 {
		return Outlook{}
	}

	o := Outlook{MinC: f.List[0].Main.Temp, MaxC: f.List[0].Main.Temp}
	counts := make(map[string]int)

	for _, entry := range f.List {
		if entry.Main.Temp < o.MinC {
			o.MinC = entry.Main.Temp
		}
		if entry.Main.Temp > o.MaxC {
			o.MaxC = entry.Main.Temp
		}
		if len(entry.Weather) > 0 {
			counts[entry.Weather[0].Description]++
		}
	}

	best := 0
	for cond, n := range counts {
		if n > best {
			best = n
			o.Condition = cond
		}
	}
	return o
}

func summarize(s *Snapshot) string {
	summary := fmt.Sprintf("Current weather in %s: %s, %.1f°C (feels like %.1f°C).",
		s.City, s.Condition, s.TempC, s.FeelsLikeC)
	if s.Outlook.Condition != "" {
		summary += fmt.Sprintf(" Next 24 hours: %.1f to %.1f°C, mostly %s.",
			s.Outlook.MinC, s.Outlook.MaxC, s.Outlook.Condition)
	}
	return summary
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Tool returns the weather lookup wired for the dispatch table. The handler
// returns the full Result so the model sees both the summary text and the
// structured snapshot when one exists.
func (c *Client) Tool() registry.Tool {
	return registry.Tool{
		Name:        ToolName,
		Description: "Returns the real-time weather summary and a short forecast for a city, or an advisory when live data is unavailable.",
		Parameters: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"city": {
					Type:        "string",
					Description: "City name to look up, e.g. Paris",
				},
			},
			Required: []string{"city"},
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			city, _ := args["city"].(string)
			if strings.TrimSpace(city) == "" {
				return nil, fmt.Errorf("city argument must be a non-empty string")
			}
			return c.Lookup(ctx, strings.TrimSpace(city)), nil
		},
	}
}
