package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Extent is a running (min, max) over float values
type Extent struct {
	Min   float64
	Max   float64
	Valid bool
}

// Add folds one value into the extent
func (e Extent) Add(v float64) Extent {
	if !e.Valid {
		return Extent{Min: v, Max: v, Valid: true}
	}
	if v < e.Min {
		e.Min = v
	}
	if v > e.Max {
		e.Max = v
	}
	return e
}

// Merge combines two extents
func (e Extent) Merge(o Extent) Extent {
	if !o.Valid {
		return e
	}
	return e.Add(o.Min).Add(o.Max)
}

// TimeExtent is a running (first, last) over timestamps
type TimeExtent struct {
	First time.Time
	Last  time.Time
	Valid bool
}

func (e TimeExtent) Add(t time.Time) TimeExtent {
	if !e.Valid {
		return TimeExtent{First: t, Last: t, Valid: true}
	}
	if t.Before(e.First) {
		e.First = t
	}
	if t.After(e.Last) {
		e.Last = t
	}
	return e
}

func (e TimeExtent) Merge(o TimeExtent) TimeExtent {
	if !o.Valid {
		return e
	}
	return e.Add(o.First).Add(o.Last)
}

// ColumnRange is the observed range of one column. Numeric and lexical
// extrema are tracked side by side; the column reports numerically only
// while every non-empty cell parsed as a number.
type ColumnRange struct {
	Count      int
	NonNumeric bool
	Numeric    Extent
	TextMin    string
	TextMax    string
}

// Observe folds one raw cell into the range. Empty cells and missing-value
// markers are ignored.
func (r ColumnRange) Observe(cell string) ColumnRange {
	cell = strings.TrimSpace(cell)
	if IsMissing(cell) {
		return r
	}

	if r.Count == 0 {
		r.TextMin, r.TextMax = cell, cell
	} else {
		if cell < r.TextMin {
			r.TextMin = cell
		}
		if cell > r.TextMax {
			r.TextMax = cell
		}
	}
	r.Count++

	if v, ok := ParseNumber(cell); ok {
		r.Numeric = r.Numeric.Add(v)
	} else {
		r.NonNumeric = true
	}
	return r
}

// Merge combines two ranges of the same column
func (r ColumnRange) Merge(o ColumnRange) ColumnRange {
	if o.Count == 0 {
		return r
	}
	if r.Count == 0 {
		return o
	}

	out := ColumnRange{
		Count:      r.Count + o.Count,
		NonNumeric: r.NonNumeric || o.NonNumeric,
		Numeric:    r.Numeric.Merge(o.Numeric),
		TextMin:    r.TextMin,
		TextMax:    r.TextMax,
	}
	if o.TextMin < out.TextMin {
		out.TextMin = o.TextMin
	}
	if o.TextMax > out.TextMax {
		out.TextMax = o.TextMax
	}
	return out
}

// IsNumeric reports whether the range should be presented as numbers
func (r ColumnRange) IsNumeric() bool {
	return r.Count > 0 && !r.NonNumeric
}

// Bounds returns the printable min and max; ok is false for an empty column
func (r ColumnRange) Bounds() (min, max string, ok bool) {
	if r.Count == 0 {
		return "", "", false
	}
	if r.IsNumeric() {
		return FormatNumber(r.Numeric.Min), FormatNumber(r.Numeric.Max), true
	}
	return r.TextMin, r.TextMax, true
}

// Aggregate is the result of scanning a track directory
type Aggregate struct {
	FileCount   int
	TotalBytes  int64
	Lat         Extent
	Lon         Extent
	Dates       TimeExtent
	Columns     map[string]ColumnRange
	ColumnOrder []string
	Warnings    []string
}

func NewAggregate() *Aggregate {
	return &Aggregate{Columns: make(map[string]ColumnRange)}
}

// ObserveColumn folds a cell into the named column's range
func (a *Aggregate) ObserveColumn(name, cell string) {
	r, seen := a.Columns[name]
	if !seen {
		a.ColumnOrder = append(a.ColumnOrder, name)
	}
	a.Columns[name] = r.Observe(cell)
}

// Merge folds o into a. Extrema and totals are commutative; only
// ColumnOrder and Warnings depend on merge order.
func (a *Aggregate) Merge(o *Aggregate) {
	if o == nil {
		return
	}
	a.FileCount += o.FileCount
	a.TotalBytes += o.TotalBytes
	a.Lat = a.Lat.Merge(o.Lat)
	a.Lon = a.Lon.Merge(o.Lon)
	a.Dates = a.Dates.Merge(o.Dates)

	for _, name := range o.ColumnOrder {
		r, seen := a.Columns[name]
		if !seen {
			a.ColumnOrder = append(a.ColumnOrder, name)
		}
		a.Columns[name] = r.Merge(o.Columns[name])
	}
	a.Warnings = append(a.Warnings, o.Warnings...)
}

// TotalMB is the total size in mebibytes
func (a *Aggregate) TotalMB() float64 {
	return float64(a.TotalBytes) / (1024 * 1024)
}

// missingMarkers are the cell values read as "no value" in exported tables
var missingMarkers = map[string]struct{}{
	"":         {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"#N/A":     {},
	"#NA":      {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"<NA>":     {},
	"1.#QNAN":  {},
	"-1.#QNAN": {},
	"1.#IND":   {},
	"-1.#IND":  {},
}

// IsMissing reports whether a trimmed cell holds no value
func IsMissing(cell string) bool {
	_, ok := missingMarkers[cell]
	return ok
}

// ParseNumber parses a decimal cell value; NaN and infinities are rejected
func ParseNumber(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatNumber prints v without trailing zeros
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
