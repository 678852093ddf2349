package geo

import (
	"math"
	"strconv"
)

const degree = "°"

// Ticks returns start, start+step, ... up to but excluding stop. When
// stop < start nothing is returned.
func Ticks(start, stop, step float64) []float64 {
	if step <= 0 || stop <= start {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, start+float64(i)*step)
	}
	return ticks
}

// FormatLongitude labels a longitude as 120°E, 45°W or 0°. Values
// beyond ±180 are wrapped first, and ±180 carries no hemisphere.
func FormatLongitude(lon float64) string {
	lon = wrapLongitude(lon)
	switch {
	case nearZero(lon):
		return "0" + degree
	case nearZero(math.Abs(lon) - 180):
		return "180" + degree
	case lon > 0:
		return formatDegrees(lon) + degree + "E"
	default:
		return formatDegrees(-lon) + degree + "W"
	}
}

// FormatLatitude labels a latitude as 30°N, 10°S or 0°
func FormatLatitude(lat float64) string {
	switch {
	case nearZero(lat):
		return "0" + degree
	case lat > 0:
		return formatDegrees(lat) + degree + "N"
	default:
		return formatDegrees(-lat) + degree + "S"
	}
}

func wrapLongitude(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

func nearZero(v float64) bool {
	return math.Abs(v) < 1e-9
}
