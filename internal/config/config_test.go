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

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "track_visualization.png", cfg.Plot.OutputName)
	assert.Equal(t, 2.0, cfg.Plot.TickStep)
	assert.False(t, cfg.Report.ShowDateRange)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trackplot.yaml")
	content := "plot:\n  width: 640\n  tick_step: 5\nreport:\n  show_date_range: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Plot.Width)
	assert.Equal(t, 1000, cfg.Plot.Height)
	assert.Equal(t, 5.0, cfg.Plot.TickStep)
	assert.True(t, cfg.Report.ShowDateRange)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRACKPLOT_BASEMAP_DIR", "/data/natural-earth")
	t.Setenv("LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "trackplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/natural-earth", cfg.Basemap.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Plot.OutputName = "../escape.png"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Plot.TickStep = 0
	assert.Error(t, cfg.Validate())
}
