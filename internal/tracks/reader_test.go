package tracks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackplot/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "date,lat,lon\n")
	writeFile(t, dir, "a.csv", "date,lat,lon\n")
	writeFile(t, dir, "notes.txt", "hello")
	writeFile(t, dir, "upper.CSV", "date,lat,lon\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "sub"), "c.csv", "date,lat,lon\n")

	files, err := ListCSV(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", filepath.Base(files[0]))
	assert.Equal(t, "b.csv", filepath.Base(files[1]))
}

func TestListCSVMissingDir(t *testing.T) {
	_, err := ListCSV(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	in := "\ufeffdate, lat ,lon,speed\n" +
		"01/02/2023,10.5,100,3\n" +
		"02/02/2023,11\n" +
		"\n" +
		"03/02/2023,12,101,4\n"

	table, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "lat", "lon", "speed"}, table.Columns)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.SkippedRows)
	assert.True(t, table.HasColumns("date", "lat", "lon"))
	assert.False(t, table.HasColumns("heading"))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestPoints(t *testing.T) {
	table := &models.TrackTable{
		Columns: []string{"lon", "lat"},
		Rows: [][]string{
			{"100", "10"},
			{"abc", "11"},
			{"102", ""},
			{"103", "13"},
		},
	}

	points, err := Points(table)
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{Lon: 100, Lat: 10}, {Lon: 103, Lat: 13}}, points)
}

func TestPointsMissingColumns(t *testing.T) {
	_, err := Points(&models.TrackTable{Columns: []string{"date", "lat"}})
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadTrack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "flight.csv", "date,lat,lon\n01/01/2024,1,2\n")

	track, err := LoadTrack(path)
	require.NoError(t, err)
	assert.Equal(t, "flight.csv", track.Name)
	assert.Equal(t, []models.Point{{Lon: 2, Lat: 1}}, track.Points)
}
