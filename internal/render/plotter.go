// Package render draws track points over a clipped base map and writes the
// result as a PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"trackplot/internal/geo"
	"trackplot/internal/logger"
	"trackplot/internal/models"
)

const (
	DefaultOutputName = "track_visualization.png"
	Title             = "Track Visualization"
)

// Options controls the rendered figure
type Options struct {
	Width      int
	Height     int
	TickStep   float64
	DotSize    float64
	OutputName string
}

func DefaultOptions() Options {
	return Options{
		Width:      1200,
		Height:     1000,
		TickStep:   2,
		DotSize:    2.5,
		OutputName: DefaultOutputName,
	}
}

// Series is one track prepared for drawing
type Series struct {
	Name   string
	Index  int
	Points []models.Point
}

// Figure describes a composed plot
type Figure struct {
	Image   image.Image
	Bounds  geo.Bounds
	Tracks  int
	Points  int
	Clipped int
	// Legend lists every track passed in, including those with no
	// points inside the bounds
	Legend []string
}

// Plotter composes map figures
type Plotter struct {
	opts    Options
	basemap *Basemap
	logger  logger.Scoped
}

func NewPlotter(opts Options, basemap *Basemap, log logger.Logger) *Plotter {
	if basemap == nil {
		basemap = EmptyBasemap()
	}
	return &Plotter{opts: opts, basemap: basemap, logger: logger.For(log, "Plotter")}
}

// Compose renders the tracks over the base map restricted to b. Points
// outside b are dropped; tracks left without points still get a legend
// entry.
func (p *Plotter) Compose(tracks []Series, b geo.Bounds) (*Figure, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	fig := &Figure{Bounds: b}
	series := p.basemap.layerSeriesFor(b)
	var entries []legendEntry

	for _, t := range tracks {
		xs := make([]float64, 0, len(t.Points))
		ys := make([]float64, 0, len(t.Points))
		for _, pt := range t.Points {
			if !b.Contains(pt.Lon, pt.Lat) {
				fig.Clipped++
				continue
			}
			xs = append(xs, pt.Lon)
			ys = append(ys, pt.Lat)
		}

		color := TrackColor(t.Index)
		entries = append(entries, legendEntry{name: t.Name, color: color})
		fig.Legend = append(fig.Legend, t.Name)
		if len(xs) == 0 {
			p.logger.Debug("track has no points inside bounds", map[string]interface{}{
				"track": t.Name,
			})
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name:    t.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    p.opts.DotSize,
				DotColor:    color,
			},
		})
		fig.Tracks++
		fig.Points += len(xs)
	}

	// go-chart refuses to render without any series
	if len(series) == 0 {
		series = append(series, layerSeries{name: string(LayerOcean)})
	}

	ch := chart.Chart{
		Title:      Title,
		Width:      p.opts.Width,
		Height:     p.opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24}},
		Canvas:     chart.Style{FillColor: p.canvasColor()},
		XAxis: chart.XAxis{
			Name:  "Longitude",
			Range: &chart.ContinuousRange{Min: b.MinLon(), Max: b.MaxLon()},
			Ticks: axisTicks(b.MinLon(), b.MaxLon(), p.opts.TickStep, geo.FormatLongitude),
		},
		YAxis: chart.YAxis{
			Name:  "Latitude",
			Range: &chart.ContinuousRange{Min: b.MinLat(), Max: b.MaxLat()},
			Ticks: axisTicks(b.MinLat(), b.MaxLat(), p.opts.TickStep, geo.FormatLatitude),
		},
		Series: series,
	}
	if len(entries) > 0 {
		ch.Elements = []chart.Renderable{legend(entries)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}

	fig.Image = withCaption(img, fmt.Sprintf("%d tracks, %d points | %s", fig.Tracks, fig.Points, b))

	p.logger.Debug("figure composed", map[string]interface{}{
		"tracks":  fig.Tracks,
		"points":  fig.Points,
		"clipped": fig.Clipped,
		"bounds":  b.String(),
	})
	return fig, nil
}

func (p *Plotter) canvasColor() drawing.Color {
	// with an explicit ocean layer the sea is drawn as polygons instead
	if p.basemap.Has(LayerOcean) {
		return drawing.ColorWhite
	}
	return oceanColor
}

// Save writes img as PNG into dir under the configured output name,
// replacing any previous output. It returns the written path.
func (p *Plotter) Save(img image.Image, dir string) (string, error) {
	name := p.opts.OutputName
	if name == "" {
		name = DefaultOutputName
	}
	path := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".trackplot-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to replace %s: %w", path, err)
	}

	p.logger.Info("image saved", map[string]interface{}{"path": path})
	return path, nil
}

// axisTicks places a labelled tick every step degrees from min (exclusive
// of max) and unlabelled ticks at both edges so the axis spans the full
// window.
func axisTicks(min, max, step float64, format func(float64) string) []chart.Tick {
	values := geo.Ticks(min, max, step)
	ticks := make([]chart.Tick, 0, len(values)+2)
	if len(values) == 0 || values[0] != min {
		ticks = append(ticks, chart.Tick{Value: min})
	}
	for _, v := range values {
		ticks = append(ticks, chart.Tick{Value: v, Label: format(v)})
	}
	ticks = append(ticks, chart.Tick{Value: max})
	return ticks
}
