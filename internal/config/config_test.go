package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"url": "https://www.linkedin.com/jobs/view/123/",
		"api_base_url": "https://tracker.example.com",
		"email": "jordan@example.com",
		"daily_goal": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://www.linkedin.com/jobs/view/123/", cfg.URL)
	assert.Equal(t, "https://tracker.example.com", cfg.APIBaseURL)
	assert.Equal(t, "jordan@example.com", cfg.Email)
	assert.Equal(t, 5, cfg.DailyGoal)
	assert.True(t, cfg.Verbose)
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

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		URL:     "https://example.com/job",
		URLFile: "urls.txt",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		ExpandDelayMS: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expand_delay_ms")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		APIBaseURL:    "https://tracker.example.com",
		ExpandDelayMS: 1000,
		DailyGoal:     3,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIBaseURL:    "https://tracker.example.com",
		Email:         "default@example.com",
		ListenAddr:    ":8080",
		ExpandDelayMS: 1000,
		DailyGoal:     3,
	}

	partial := Config{
		Email: "jordan@example.com",
		URL:   "https://example.com/job",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "jordan@example.com", merged.Email)
	assert.Equal(t, "https://example.com/job", merged.URL)

	// Default values should fill in empty fields
	assert.Equal(t, "https://tracker.example.com", merged.APIBaseURL)
	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, 1000, merged.ExpandDelayMS)
	assert.Equal(t, 3, merged.DailyGoal)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		URL:   "https://example.com/job",
		Email: "jordan@example.com",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "https://example.com/job", merged.URL)
	assert.Equal(t, "jordan@example.com", merged.Email)
}
