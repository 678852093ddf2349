// Package geo holds the geographic window used for plotting and the
// helpers that place and label its graticule.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is the (lon1, lon2, lat1, lat2) window of the map, in degrees.
// The values are kept in the order the user entered them.
type Bounds struct {
	Lon1 float64
	Lon2 float64
	Lat1 float64
	Lat2 float64
}

// ParseBounds parses the four free-text prompts. Every value must be a
// finite number inside the valid coordinate range, and neither axis may be
// degenerate.
func ParseBounds(lon1, lon2, lat1, lat2 string) (Bounds, error) {
	values := make([]float64, 4)
	for i, field := range []struct{ name, text string }{
		{"lon1", lon1}, {"lon2", lon2}, {"lat1", lat1}, {"lat2", lat2},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(field.text), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Bounds{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidBounds, field.name, field.text)
		}
		values[i] = v
	}

	b := Bounds{Lon1: values[0], Lon2: values[1], Lat1: values[2], Lat2: values[3]}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// Validate checks coordinate ranges and extent
func (b Bounds) Validate() error {
	for _, lon := range []float64{b.Lon1, b.Lon2} {
		if lon < -180 || lon > 180 {
			return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidBounds, lon)
		}
	}
	for _, lat := range []float64{b.Lat1, b.Lat2} {
		if lat < -90 || lat > 90 {
			return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidBounds, lat)
		}
	}
	if b.Lon1 == b.Lon2 || b.Lat1 == b.Lat2 {
		return fmt.Errorf("%w: empty extent", ErrInvalidBounds)
	}
	return nil
}

func (b Bounds) MinLon() float64 { return math.Min(b.Lon1, b.Lon2) }
func (b Bounds) MaxLon() float64 { return math.Max(b.Lon1, b.Lon2) }
func (b Bounds) MinLat() float64 { return math.Min(b.Lat1, b.Lat2) }
func (b Bounds) MaxLat() float64 { return math.Max(b.Lat1, b.Lat2) }

// Contains reports whether the point lies inside the window, edges included
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon() && lon <= b.MaxLon() && lat >= b.MinLat() && lat <= b.MaxLat()
}

func (b Bounds) String() string {
	return fmt.Sprintf("lon [%v, %v] lat [%v, %v]", b.Lon1, b.Lon2, b.Lat1, b.Lat2)
}
