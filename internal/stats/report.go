package stats

import (
	"fmt"
	"strings"

	"trackplot/internal/models"
)

const (
	NoFilesMessage = "No CSV files found in this folder."
	noValue        = "None"
	dateLayout     = "2006-01-02"
)

// ReportOptions toggles optional report fields
type ReportOptions struct {
	ShowDateRange bool
}

// FormatReport renders the summary shown to the user. Warnings are not
// included; callers emit them before the summary as they were produced.
func FormatReport(agg *models.Aggregate, opts ReportOptions) string {
	if agg == nil || agg.FileCount == 0 {
		return NoFilesMessage + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CSV files: %d\n", agg.FileCount)
	fmt.Fprintf(&b, "Total size: %.2f MB\n", agg.TotalMB())
	if opts.ShowDateRange {
		first, last := noValue, noValue
		if agg.Dates.Valid {
			first = agg.Dates.First.Format(dateLayout)
			last = agg.Dates.Last.Format(dateLayout)
		}
		fmt.Fprintf(&b, "Date range: %s to %s\n", first, last)
	}
	fmt.Fprintf(&b, "Latitude range: %s to %s\n", extentBound(agg.Lat, true), extentBound(agg.Lat, false))
	fmt.Fprintf(&b, "Longitude range: %s to %s\n", extentBound(agg.Lon, true), extentBound(agg.Lon, false))
	b.WriteString("Columns and ranges:\n")
	for _, name := range agg.ColumnOrder {
		min, max, ok := agg.Columns[name].Bounds()
		if !ok {
			min, max = noValue, noValue
		}
		fmt.Fprintf(&b, " - %s : %s to %s\n", name, min, max)
	}
	return b.String()
}

func extentBound(e models.Extent, lower bool) string {
	if !e.Valid {
		return noValue
	}
	if lower {
		return models.FormatNumber(e.Min)
	}
	return models.FormatNumber(e.Max)
}

// Range is a serialisable numeric (min, max) pair
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// DateRange is a serialisable date (first, last) pair
type DateRange struct {
	First string `json:"first" yaml:"first"`
	Last  string `json:"last" yaml:"last"`
}

// ColumnSummary is one entry of the per-column range table
type ColumnSummary struct {
	Name    string  `json:"name" yaml:"name"`
	Numeric bool    `json:"numeric" yaml:"numeric"`
	Min     *string `json:"min" yaml:"min"`
	Max     *string `json:"max" yaml:"max"`
}

// Summary is the structured form of the report, used for json/yaml output
type Summary struct {
	Files      int             `json:"files" yaml:"files"`
	TotalBytes int64           `json:"total_bytes" yaml:"total_bytes"`
	TotalMB    float64         `json:"total_mb" yaml:"total_mb"`
	Latitude   *Range          `json:"latitude" yaml:"latitude"`
	Longitude  *Range          `json:"longitude" yaml:"longitude"`
	Dates      *DateRange      `json:"dates,omitempty" yaml:"dates,omitempty"`
	Columns    []ColumnSummary `json:"columns" yaml:"columns"`
	Warnings   []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Summarize converts an aggregate into its serialisable form
func Summarize(agg *models.Aggregate, opts ReportOptions) Summary {
	s := Summary{
		Files:      agg.FileCount,
		TotalBytes: agg.TotalBytes,
		TotalMB:    agg.TotalMB(),
		Latitude:   toRange(agg.Lat),
		Longitude:  toRange(agg.Lon),
		Columns:    make([]ColumnSummary, 0, len(agg.ColumnOrder)),
		Warnings:   agg.Warnings,
	}
	if opts.ShowDateRange && agg.Dates.Valid {
		s.Dates = &DateRange{
			First: agg.Dates.First.Format(dateLayout),
			Last:  agg.Dates.Last.Format(dateLayout),
		}
	}
	for _, name := range agg.ColumnOrder {
		r := agg.Columns[name]
		cs := ColumnSummary{Name: name, Numeric: r.IsNumeric()}
		if min, max, ok := r.Bounds(); ok {
			cs.Min, cs.Max = &min, &max
		}
		s.Columns = append(s.Columns, cs)
	}
	return s
}

func toRange(e models.Extent) *Range {
	if !e.Valid {
		return nil
	}
	return &Range{Min: e.Min, Max: e.Max}
}
