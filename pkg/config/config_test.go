package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripweaver/tripweaver/pkg/config"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultModelName, cfg.ModelName)
	assert.Equal(t, config.DefaultMaxToolRounds, cfg.MaxToolRounds)
	assert.Equal(t, config.DefaultWeatherTimeout, cfg.WeatherTimeout)
	assert.False(t, cfg.HasModelCredential())
	assert.False(t, cfg.HasWeatherCredential())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
model_api_key: test-model-key
model_name: test-model
max_tool_rounds: 3
weather_api_key: test-weather-key
weather_timeout: 5s
listen_addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-model-key", cfg.ModelAPIKey)
	assert.Equal(t, "test-model", cfg.ModelName)
	assert.Equal(t, 3, cfg.MaxToolRounds)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.True(t, cfg.HasModelCredential())
	assert.True(t, cfg.HasWeatherCredential())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_name: from-file\n"), 0o600))

	t.Setenv("TRIPWEAVER_MODEL_NAME", "from-env")
	t.Setenv("TRIPWEAVER_MAX_TOOL_ROUNDS", "2")
	t.Setenv("OPENWEATHER_API_KEY", "ow-key")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ModelName)
	assert.Equal(t, 2, cfg.MaxToolRounds)
	assert.Equal(t, "ow-key", cfg.WeatherAPIKey)
}

func TestLoad_TripweaverEnvWinsOverConventional(t *testing.T) {
	t.Setenv("TRIPWEAVER_MODEL_API_KEY", "specific")
	t.Setenv("GOOGLE_API_KEY", "conventional")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "specific", cfg.ModelAPIKey)
}

func TestLoad_RejectsBadStepBudget(t *testing.T) {
	t.Setenv("TRIPWEAVER_MAX_TOOL_ROUNDS", "0")

	_, err := config.Load("")
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_name: [unclosed"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
