package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "https://www.eventbriteapi.com/v3", config.Eventbrite.BaseURL)
	assert.Equal(t, 30*time.Second, config.Eventbrite.RequestTimeout)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "claude", config.LLM.DefaultProvider)
	assert.InDelta(t, 0.3, config.Summary.Temperature, 0.001)
	assert.False(t, config.IsProduction())
}

func TestLoadFromFiles_MergesInOrder(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	require.NoError(t, os.WriteFile(base, []byte(`
[eventbrite]
api_key = "base-key"

[logging]
level = "debug"
`), 0644))

	override := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(override, []byte(`
[eventbrite]
api_key = "override-key"
`), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, "override-key", config.Eventbrite.APIKey)
	assert.Equal(t, "debug", config.Logging.Level, "earlier file's values survive when not overridden")
	assert.Equal(t, "https://www.eventbriteapi.com/v3", config.Eventbrite.BaseURL, "defaults survive merging")
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/eventbrief.toml")
	assert.Error(t, err)
}

func TestLoadFromFiles_EnvOverrides(t *testing.T) {
	t.Setenv("EVENTBRIEF_EVENTBRITE_API_KEY", "env-key")
	t.Setenv("EVENTBRIEF_LOG_LEVEL", "warn")
	t.Setenv("EVENTBRIEF_LLM_PROVIDER", "gemini")
	t.Setenv("EVENTBRIEF_SUMMARY_TEMPERATURE", "0.7")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "env-key", config.Eventbrite.APIKey)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "gemini", config.LLM.DefaultProvider)
	assert.InDelta(t, 0.7, config.Summary.Temperature, 0.001)
}

func TestLoadFromFiles_LegacyAPIKeyEnv(t *testing.T) {
	t.Setenv("EVENTBRITE_API_KEY", "legacy-key")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "legacy-key", config.Eventbrite.APIKey)
}

func TestValidate(t *testing.T) {
	config := NewDefaultConfig()
	config.Eventbrite.APIKey = "some-key"
	assert.NoError(t, config.Validate())

	config.Eventbrite.APIKey = ""
	assert.Error(t, config.Validate(), "api key is required")

	config.Eventbrite.APIKey = "some-key"
	config.Logging.Level = "verbose"
	assert.Error(t, config.Validate(), "unknown log level is rejected")
}
