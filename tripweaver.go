package tripweaver

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tripweaver/tripweaver/internal/agent"
	"github.com/tripweaver/tripweaver/pkg/config"
	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/registry"
	"github.com/tripweaver/tripweaver/pkg/tools/catalog"
	"github.com/tripweaver/tripweaver/pkg/tools/weather"
)

// Version is the release version, embedded from the VERSION file.
//
//go:embed VERSION
var Version string

// Planner is the high-level entry point for the TripWeaver library.
// It wires the configured model client, the tool registry and the agent
// loop, and provides a simplified API for consumers.
type Planner struct {
	agent    *agent.Agent
	registry *registry.Registry
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner, *construction)

// construction holds injection points that only matter during New.
type construction struct {
	chatClient    agent.ChatCompleter
	weatherClient *http.Client
	hooks         domain.LifecycleHooks
}

// WithLifecycleHooks registers observability hooks, fired on plan start and
// end, each tool round and each model round.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(_ *Planner, c *construction) {
		c.hooks = hooks
	}
}

// WithChatClient injects a custom chat-completions client, bypassing the
// default OpenAI-compatible client built from the config. The model
// credential check is skipped when a client is injected.
func WithChatClient(client agent.ChatCompleter) Option {
	return func(_ *Planner, c *construction) {
		c.chatClient = client
	}
}

// WithWeatherHTTPClient injects the HTTP client used for weather lookups.
func WithWeatherHTTPClient(hc *http.Client) Option {
	return func(_ *Planner, c *construction) {
		c.weatherClient = hc
	}
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner, _ *construction) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New initializes a new Planner from the given configuration.
//
// A missing model credential is a blocking error: the planner is never
// constructed and ErrModelCredentialMissing is returned. A missing weather
// credential is not; weather lookups then degrade to an advisory string.
func New(cfg *config.Config, opts ...Option) (*Planner, error) {
	p := &Planner{logger: slog.Default()}
	c := &construction{}
	for _, opt := range opts {
		opt(p, c)
	}

	if c.chatClient == nil {
		if !cfg.HasModelCredential() {
			return nil, domain.ErrModelCredentialMissing
		}
		clientCfg := openai.DefaultConfig(cfg.ModelAPIKey)
		clientCfg.BaseURL = cfg.ModelBaseURL
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.ModelTimeout}
		c.chatClient = openai.NewClientWithConfig(clientCfg)
	}

	p.registry = NewToolRegistry(cfg, p.logger, c.weatherClient)

	p.agent = agent.New(c.chatClient, cfg.ModelName, p.registry,
		agent.WithTemperature(cfg.Temperature),
		agent.WithMaxToolRounds(cfg.MaxToolRounds),
		agent.WithHooks(c.hooks),
		agent.WithLogger(p.logger),
	)

	return p, nil
}

// NewToolRegistry builds the closed tool registry the planner dispatches to:
// weather lookup, example flights, example hotels. It is also usable on its
// own, without a model credential, for exposing the tools directly.
// httpClient may be nil; the weather client then builds its own.
func NewToolRegistry(cfg *config.Config, logger *slog.Logger, httpClient *http.Client) *registry.Registry {
	weatherOpts := []weather.Option{
		weather.WithTimeout(cfg.WeatherTimeout),
		weather.WithLogger(logger),
	}
	if cfg.WeatherBaseURL != "" {
		weatherOpts = append(weatherOpts, weather.WithBaseURL(cfg.WeatherBaseURL))
	}
	if httpClient != nil {
		weatherOpts = append(weatherOpts, weather.WithHTTPClient(httpClient))
	}
	if cfg.WeatherCacheAddr != "" {
		cache := weather.NewRedisCache(cfg.WeatherCacheAddr, weather.WithTTL(cfg.WeatherCacheTTL))
		weatherOpts = append(weatherOpts, weather.WithCache(cache))
	}
	weatherClient := weather.New(cfg.WeatherAPIKey, weatherOpts...)

	reg := registry.New()
	reg.Register(weatherClient.Tool())
	reg.Register(catalog.FlightsTool())
	reg.Register(catalog.HotelsTool())
	return reg
}

// PlanTrip runs one planning request end to end: model rounds, tool
// dispatch, final answer parsing. A parse failure is not an error; the
// returned result carries the raw model text and the parse diagnostic.
func (p *Planner) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error) {
	return p.agent.PlanTrip(ctx, req)
}

// Registry exposes the tool registry, so adapters can serve the same tools
// the planner dispatches to.
func (p *Planner) Registry() *registry.Registry {
	return p.registry
}
