// Package config loads the process-wide configuration: model and weather
// credentials, endpoints, timeouts and the agent step budget. The config is
// read once at startup and is read-only afterwards; it is passed explicitly
// into the components that need it rather than looked up ambiently.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for everything that has a sensible one. The model credential has
// no default on purpose: its absence must surface as a blocking error.
const (
	DefaultModelBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModelName      = "gemini-2.5-flash"
	DefaultModelTimeout   = 60 * time.Second
	DefaultWeatherTimeout = 10 * time.Second
	DefaultMaxToolRounds  = 8
	DefaultTemperature    = 0.7
	DefaultListenAddr     = ":8080"
	DefaultCacheTTL       = 10 * time.Minute
)

// Config is the process-wide configuration.
type Config struct {
	// Model provider (OpenAI-compatible chat completions endpoint).
	ModelAPIKey  string        `yaml:"model_api_key"`
	ModelBaseURL string        `yaml:"model_base_url"`
	ModelName    string        `yaml:"model_name"`
	ModelTimeout time.Duration `yaml:"model_timeout"`
	Temperature  float32       `yaml:"temperature"`

	// Agent step budget: maximum tool rounds before the run is stopped
	// non-fatally and whatever text exists is returned.
	MaxToolRounds int `yaml:"max_tool_rounds"`

	// Weather provider. An empty key is not an error: lookups degrade to
	// their advisory fallback.
	WeatherAPIKey  string        `yaml:"weather_api_key"`
	WeatherBaseURL string        `yaml:"weather_base_url"`
	WeatherTimeout time.Duration `yaml:"weather_timeout"`

	// Optional weather snapshot cache. Empty address disables caching.
	WeatherCacheAddr string        `yaml:"weather_cache_addr"`
	WeatherCacheTTL  time.Duration `yaml:"weather_cache_ttl"`

	// HTTP adapter listen address.
	ListenAddr string `yaml:"listen_addr"`
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ModelBaseURL:    DefaultModelBaseURL,
		ModelName:       DefaultModelName,
		ModelTimeout:    DefaultModelTimeout,
		Temperature:     DefaultTemperature,
		MaxToolRounds:   DefaultMaxToolRounds,
		WeatherTimeout:  DefaultWeatherTimeout,
		WeatherCacheTTL: DefaultCacheTTL,
		ListenAddr:      DefaultListenAddr,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.MaxToolRounds < 1 {
		return nil, fmt.Errorf("max_tool_rounds must be >= 1, got %d", cfg.MaxToolRounds)
	}

	return cfg, nil
}

// applyEnv overlays environment variables. TRIPWEAVER_* names win over the
// conventional provider names, which are honored for drop-in deployment.
func (c *Config) applyEnv() {
	setString(&c.ModelAPIKey, "TRIPWEAVER_MODEL_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY")
	setString(&c.ModelBaseURL, "TRIPWEAVER_MODEL_BASE_URL")
	setString(&c.ModelName, "TRIPWEAVER_MODEL_NAME")
	setDuration(&c.ModelTimeout, "TRIPWEAVER_MODEL_TIMEOUT")
	setInt(&c.MaxToolRounds, "TRIPWEAVER_MAX_TOOL_ROUNDS")

	setString(&c.WeatherAPIKey, "TRIPWEAVER_WEATHER_API_KEY", "OPENWEATHER_API_KEY")
	setString(&c.WeatherBaseURL, "TRIPWEAVER_WEATHER_BASE_URL")
	setDuration(&c.WeatherTimeout, "TRIPWEAVER_WEATHER_TIMEOUT")

	setString(&c.WeatherCacheAddr, "TRIPWEAVER_WEATHER_CACHE_ADDR")
	setDuration(&c.WeatherCacheTTL, "TRIPWEAVER_WEATHER_CACHE_TTL")

	setString(&c.ListenAddr, "TRIPWEAVER_LISTEN_ADDR")
}

// HasModelCredential reports whether the planner may be constructed at all.
func (c *Config) HasModelCredential() bool {
	return c.ModelAPIKey != ""
}

// HasWeatherCredential reports whether live weather is available. False is
// degraded operation, not an error.
func (c *Config) HasWeatherCredential() bool {
	return c.WeatherAPIKey != ""
}

func setString(dst *string, names ...string) {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			*dst = v
			return
		}
	}
}

func setDuration(dst *time.Duration, name string) {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, name string) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
