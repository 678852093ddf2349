// Package stats folds a directory of track files into a single Aggregate.
package stats

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"

	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/tracks"
)

const component = "Aggregator"

// Aggregator scans track files and accumulates counts, sizes and ranges
type Aggregator struct {
	logger logger.Scoped
}

func NewAggregator(log logger.Logger) *Aggregator {
	return &Aggregator{logger: logger.For(log, component)}
}

// Aggregate scans every .csv file directly inside dir. Only a failure to
// list the directory is returned as an error; per-file problems end up in
// the result's Warnings.
func (a *Aggregator) Aggregate(ctx context.Context, dir string) (*models.Aggregate, error) {
	files, err := tracks.ListCSV(dir)
	if err != nil {
		return nil, err
	}
	return a.AggregateFiles(ctx, files)
}

// AggregateFiles folds the given files in order
func (a *Aggregator) AggregateFiles(ctx context.Context, files []string) (*models.Aggregate, error) {
	start := time.Now()
	total := models.NewAggregate()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		total.Merge(a.AggregateFile(path))
	}

	a.logger.Info("aggregation finished", map[string]interface{}{
		"files":    total.FileCount,
		"size":     humanize.Bytes(uint64(total.TotalBytes)),
		"warnings": len(total.Warnings),
		"elapsed":  time.Since(start).String(),
	})
	return total, nil
}

// AggregateFile produces the contribution of a single file. The file is
// always counted, even when it cannot be parsed.
func (a *Aggregator) AggregateFile(path string) *models.Aggregate {
	name := filepath.Base(path)
	agg := models.NewAggregate()
	agg.FileCount = 1

	size, err := tracks.FileSize(path)
	if err != nil {
		a.warnReadError(agg, name, err)
		return agg
	}
	agg.TotalBytes = size

	table, err := tracks.ReadTable(path)
	if err != nil {
		a.warnReadError(agg, name, err)
		return agg
	}

	if !table.HasColumns(models.ColumnDate, models.ColumnLat, models.ColumnLon) {
		agg.Warnings = append(agg.Warnings, MissingColumnsMessage(name))
		a.logger.Warning("file is missing required columns", map[string]interface{}{
			"file":    name,
			"columns": strings.Join(table.Columns, ","),
		})
		return agg
	}

	dateIdx := table.ColumnIndex(models.ColumnDate)
	latIdx := table.ColumnIndex(models.ColumnLat)
	lonIdx := table.ColumnIndex(models.ColumnLon)

	for _, row := range table.Rows {
		if t, ok := ParseDate(row[dateIdx]); ok {
			agg.Dates = agg.Dates.Add(t)
		}
		if v, ok := models.ParseNumber(row[latIdx]); ok {
			agg.Lat = agg.Lat.Add(v)
		}
		if v, ok := models.ParseNumber(row[lonIdx]); ok {
			agg.Lon = agg.Lon.Add(v)
		}
		for i, column := range table.Columns {
			agg.ObserveColumn(column, row[i])
		}
	}
	// header-only files still list their columns
	for _, column := range table.Columns {
		if _, seen := agg.Columns[column]; !seen {
			agg.ColumnOrder = append(agg.ColumnOrder, column)
			agg.Columns[column] = models.ColumnRange{}
		}
	}

	a.logger.Debug("file aggregated", map[string]interface{}{
		"file":         name,
		"rows":         len(table.Rows),
		"skipped_rows": table.SkippedRows,
		"size":         humanize.Bytes(uint64(size)),
	})
	return agg
}

func (a *Aggregator) warnReadError(agg *models.Aggregate, name string, err error) {
	agg.Warnings = append(agg.Warnings, ReadErrorMessage(name, err))
	a.logger.Error(err, map[string]interface{}{"file": name})
}

// dayMonthYear matches numeric dates with a trailing four digit year
// separated by dashes or dots, such as 31-12-2023
var dayMonthYear = regexp.MustCompile(`^(\d{1,2})[-.](\d{1,2})[-.](\d{4})\b`)

// ParseDate parses a date cell day-first (01/02/2023 is 1 February).
// Unparseable values report ok=false.
func ParseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if models.IsMissing(cell) {
		return time.Time{}, false
	}
	// dateparse only reads dash-separated numeric dates year first
	cell = dayMonthYear.ReplaceAllString(cell, "$1/$2/$3")
	t, err := dateparse.ParseIn(cell, time.UTC, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func MissingColumnsMessage(name string) string {
	return fmt.Sprintf("File %s is missing required columns!", name)
}

func ReadErrorMessage(name string, err error) string {
	return fmt.Sprintf("Error reading file %s: %v", name, err)
}
