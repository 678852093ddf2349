package models

// Required track columns
const (
	ColumnDate = "date"
	ColumnLat  = "lat"
	ColumnLon  = "lon"
)

// TrackTable is one parsed CSV file: its header and raw cell values.
// Rows with a field count different from the header are dropped on read
// and counted in SkippedRows.
type TrackTable struct {
	Name        string
	Path        string
	Size        int64
	Columns     []string
	Rows        [][]string
	SkippedRows int
}

// ColumnIndex returns the position of name in the header, or -1
func (t *TrackTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumns reports whether every named column is present
func (t *TrackTable) HasColumns(names ...string) bool {
	for _, n := range names {
		if t.ColumnIndex(n) < 0 {
			return false
		}
	}
	return true
}

// Point is a single track sample
type Point struct {
	Lon float64
	Lat float64
}

// Track is the plottable form of a TrackTable
type Track struct {
	Name   string
	Points []Point
}
