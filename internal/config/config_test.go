package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 8080,
		"scholar_base_url": "https://scholar.google.com",
		"fetch_timeout": "10s",
		"use_browser": true,
		"max_upload_bytes": 1048576
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://scholar.google.com", cfg.ScholarBaseURL)
	assert.Equal(t, "10s", cfg.FetchTimeout)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_NegativeUploadCap(t *testing.T) {
	cfg := &Config{MaxUploadBytes: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_upload_bytes")
}

func TestValidate_BadDuration(t *testing.T) {
	cfg := &Config{FetchTimeout: "ten seconds"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch_timeout")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Port:           3000,
		FetchTimeout:   "30s",
		BrowserTimeout: "1m",
		MaxUploadBytes: 5 * 1024 * 1024,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:           3000,
		ScholarBaseURL: "https://scholar.google.com",
		FetchTimeout:   "30s",
		MaxUploadBytes: 1024,
	}

	partial := Config{
		Port:      8080,
		UserAgent: "custom-agent",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "custom-agent", merged.UserAgent)

	// Default values should fill in empty fields
	assert.Equal(t, "https://scholar.google.com", merged.ScholarBaseURL)
	assert.Equal(t, "30s", merged.FetchTimeout)
	assert.Equal(t, int64(1024), merged.MaxUploadBytes)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Port:      8080,
		UserAgent: "agent",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, "agent", merged.UserAgent)
}

func TestTimeoutDurations(t *testing.T) {
	cfg := &Config{FetchTimeout: "5s", BrowserTimeout: "2m"}
	assert.Equal(t, 5*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, 2*time.Minute, cfg.BrowserTimeoutDuration())

	empty := &Config{}
	assert.Equal(t, DefaultFetchTimeout, empty.FetchTimeoutDuration())
	assert.Equal(t, DefaultBrowserTimeout, empty.BrowserTimeoutDuration())
	assert.Equal(t, DefaultPort, empty.EffectivePort())
	assert.Equal(t, int64(DefaultMaxUploadBytes), empty.EffectiveMaxUploadBytes())
}
