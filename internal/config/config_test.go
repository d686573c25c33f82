package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, "us-east-1", cfg.AWS.DefaultRegion)
	assert.Equal(t, "us-central1", cfg.GCP.DefaultRegion)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.UsageRates)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// Save creates intermediate directories and the round trip preserves
// every field, including usage rate overrides.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Output.DefaultFormat = "json"
	cfg.AWS.Profile = "pricing"
	cfg.UsageRates = map[string]map[string]float64{
		"premium": {"interactive": 0.70},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

// A partial file only overrides the fields it names.
func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"default_format":"json"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "us-east-1", cfg.AWS.DefaultRegion)
	assert.Equal(t, "us-central1", cfg.GCP.DefaultRegion)
}

func TestDefaultPath(t *testing.T) {
	assert.Contains(t, DefaultPath(), "compute-cost")
}
