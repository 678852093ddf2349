package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"trackplot/internal/logger"
	"trackplot/internal/stats"
)

func writeTracks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"),
		[]byte("date,lat,lon\n01/01/2023,10,100\n02/01/2023,20,110\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"),
		[]byte("date,lat,lon\n03/01/2023,5,95\n04/01/2023,25,115\n"), 0o644))
	return dir
}

// run executes the command tree with a config file that does not exist in
// the user's environment
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "trackplot.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("plot:\n  width: 320\n  height: 240\n"), 0o644))

	var out bytes.Buffer
	root := newRootCmd(&out, logger.NoOpLogger{})
	root.SetArgs(append([]string{"--config", cfgFile}, args...))
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestStatsText(t *testing.T) {
	dir := writeTracks(t)
	out, err := run(t, "stats", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "CSV files: 2\n")
	assert.Contains(t, out, "Latitude range: 5 to 25\n")
	assert.Contains(t, out, "Longitude range: 95 to 115\n")
}

func TestStatsEmptyFolder(t *testing.T) {
	out, err := run(t, "stats", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, stats.NoFilesMessage+"\n", out)
}

func TestStatsJSON(t *testing.T) {
	dir := writeTracks(t)
	out, err := run(t, "stats", dir, "--format", "json")
	require.NoError(t, err)

	var summary stats.Summary
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Files)
	require.NotNil(t, summary.Latitude)
	assert.Equal(t, 5.0, summary.Latitude.Min)
	assert.Equal(t, 25.0, summary.Latitude.Max)
}

func TestStatsYAML(t *testing.T) {
	dir := writeTracks(t)
	out, err := run(t, "stats", dir, "-f", "yaml")
	require.NoError(t, err)

	var summary stats.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summary))
	require.NotNil(t, summary.Longitude)
	assert.Equal(t, 95.0, summary.Longitude.Min)
	assert.Len(t, summary.Columns, 3)
}

func TestStatsStructuredEmptyFolder(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		out, err := run(t, "stats", t.TempDir(), "--format", format)
		require.NoError(t, err, format)
		assert.Equal(t, stats.NoFilesMessage+"\n", out, format)
	}
}

func TestStatsUnknownFormat(t *testing.T) {
	_, err := run(t, "stats", t.TempDir(), "--format", "xml")
	assert.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	dir := writeTracks(t)
	out, err := run(t, "plot", dir, "--lon1", "90", "--lon2", "120", "--lat1", "0", "--lat2", "30")
	require.NoError(t, err)

	path := filepath.Join(dir, "track_visualization.png")
	assert.Contains(t, out, "Image saved to: "+path)
	assert.FileExists(t, path)
}

func TestPlotCommandInvalidBounds(t *testing.T) {
	dir := writeTracks(t)
	out, err := run(t, "plot", dir, "--lon1", "west", "--lon2", "120", "--lat1", "0", "--lat2", "30")
	require.Error(t, err)
	assert.Contains(t, out, "Invalid input, please make sure you enter numbers!")
	assert.NoFileExists(t, filepath.Join(dir, "track_visualization.png"))
}

func TestPlotCommandRequiresBounds(t *testing.T) {
	_, err := run(t, "plot", t.TempDir(), "--lon1", "90")
	assert.Error(t, err)
}
