package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/occupancy/config"
	"github.com/katalvlaran/occupancy/enumerate"
	"github.com/katalvlaran/occupancy/normalize"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "occupancy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, enumerate.DefaultMaxLevels, cfg.Search.MaxLevels)
	assert.True(t, cfg.Search.Prune)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
search:
  max_levels: 30
  workers: 3
  time_limit: 2s
output:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Search.MaxLevels)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.True(t, cfg.Search.Prune, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)

	tl, err := cfg.TimeLimit()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, tl)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "search: [unclosed"))
	assert.Error(t, err)

	for _, body := range []string{
		"search:\n  max_levels: -1\n",
		"search:\n  workers: -1\n",
		"search:\n  step_budget: -3\n",
		"search:\n  time_limit: soon\n",
		"output:\n  format: xml\n",
		"logging:\n  level: loud\n",
		"logging:\n  format: xml\n",
	} {
		_, err = config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, "body %q", body)
	}
}

// TestSearchOptions_DriveEnumerate wires the config into a real search.
func TestSearchOptions_DriveEnumerate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.MaxLevels = 10
	opts, err := cfg.SearchOptions()
	require.NoError(t, err)

	r, err := normalize.Reduce(20, 106)
	require.NoError(t, err)
	_, err = enumerate.Enumerate(r, opts...)
	assert.ErrorIs(t, err, enumerate.ErrSearchSpaceTooLarge)

	cfg.Search.MaxLevels = 0
	cfg.Search.Workers = 3
	opts, err = cfg.SearchOptions()
	require.NoError(t, err)
	res, err := enumerate.Enumerate(r, opts...)
	require.NoError(t, err)
	assert.Equal(t, 24, res.Count)
}
