// Package tracks finds and parses CSV track files.
package tracks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"trackplot/internal/models"
)

const Extension = ".csv"

var (
	ErrMissingColumns = errors.New("missing required columns")
	ErrEmptyFile      = errors.New("no columns to parse from file")
)

// ListCSV returns the .csv files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ListCSV(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FileSize returns the on-disk size of path
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// ReadTable parses a CSV file with a header row. Rows whose field count
// differs from the header are skipped and counted.
func ReadTable(path string) (*models.TrackTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, err
	}
	table.Name = filepath.Base(path)
	table.Path = path
	if info, err := file.Stat(); err == nil {
		table.Size = info.Size()
	}
	return table, nil
}

// Parse reads a CSV stream into a table
func Parse(r io.Reader) (*models.TrackTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}
	columns[0] = strings.TrimPrefix(columns[0], "\ufeff")

	table := &models.TrackTable{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV file: %w", err)
		}
		if len(record) != len(columns) {
			table.SkippedRows++
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// Points extracts the (lon, lat) samples of a table. Rows where either
// coordinate does not parse are skipped.
func Points(table *models.TrackTable) ([]models.Point, error) {
	latIdx := table.ColumnIndex(models.ColumnLat)
	lonIdx := table.ColumnIndex(models.ColumnLon)
	if latIdx < 0 || lonIdx < 0 {
		return nil, fmt.Errorf("%w: need %q and %q", ErrMissingColumns, models.ColumnLat, models.ColumnLon)
	}

	points := make([]models.Point, 0, len(table.Rows))
	for _, row := range table.Rows {
		lat, okLat := models.ParseNumber(row[latIdx])
		lon, okLon := models.ParseNumber(row[lonIdx])
		if !okLat || !okLon {
			continue
		}
		points = append(points, models.Point{Lon: lon, Lat: lat})
	}
	return points, nil
}

// LoadTrack reads a file and returns its plottable points
func LoadTrack(path string) (*models.Track, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	points, err := Points(table)
	if err != nil {
		return nil, err
	}
	return &models.Track{Name: table.Name, Points: points}, nil
}
