package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBounds(t *testing.T) {
	b, err := ParseBounds("100", " 120.5", "-10", "30")
	require.NoError(t, err)
	assert.Equal(t, Bounds{Lon1: 100, Lon2: 120.5, Lat1: -10, Lat2: 30}, b)
}

func TestParseBoundsRejectsText(t *testing.T) {
	cases := [][4]string{
		{"abc", "120", "0", "10"},
		{"100", "", "0", "10"},
		{"100", "120", "NaN", "10"},
		{"100", "120", "0", "inf"},
		{"100", "120", "0", "10°"},
	}
	for _, c := range cases {
		_, err := ParseBounds(c[0], c[1], c[2], c[3])
		assert.ErrorIs(t, err, ErrInvalidBounds, c)
	}
}

func TestParseBoundsRejectsRangeAndExtent(t *testing.T) {
	_, err := ParseBounds("100", "200", "0", "10")
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = ParseBounds("100", "120", "-95", "10")
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = ParseBounds("100", "100", "0", "10")
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestBoundsNormalisedAccessors(t *testing.T) {
	b := Bounds{Lon1: 120, Lon2: 100, Lat1: 30, Lat2: -10}
	assert.Equal(t, 100.0, b.MinLon())
	assert.Equal(t, 120.0, b.MaxLon())
	assert.Equal(t, -10.0, b.MinLat())
	assert.Equal(t, 30.0, b.MaxLat())
	assert.True(t, b.Contains(110, 0))
	assert.True(t, b.Contains(100, 30))
	assert.False(t, b.Contains(99.9, 0))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{100, 102, 104, 106, 108}, Ticks(100, 110, 2))
	assert.Equal(t, []float64{100.5, 102.5}, Ticks(100.5, 103, 2))
	assert.Equal(t, []float64{-3, -1}, Ticks(-3, 0, 2))
	assert.Nil(t, Ticks(110, 100, 2))
	assert.Nil(t, Ticks(0, 10, 0))
}

func TestFormatLongitude(t *testing.T) {
	assert.Equal(t, "120°E", FormatLongitude(120))
	assert.Equal(t, "45°W", FormatLongitude(-45))
	assert.Equal(t, "0°", FormatLongitude(0))
	assert.Equal(t, "180°", FormatLongitude(180))
	assert.Equal(t, "180°", FormatLongitude(-180))
	assert.Equal(t, "100.5°E", FormatLongitude(100.5))
	assert.Equal(t, "170°W", FormatLongitude(190))
}

func TestFormatLatitude(t *testing.T) {
	assert.Equal(t, "30°N", FormatLatitude(30))
	assert.Equal(t, "10°S", FormatLatitude(-10))
	assert.Equal(t, "0°", FormatLatitude(0))
	assert.Equal(t, "0.25°N", FormatLatitude(0.25))
}
