package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/geojson"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"trackplot/internal/geo"
	"trackplot/internal/logger"
)

// LayerKind identifies one base map feature class
type LayerKind string

const (
	LayerOcean     LayerKind = "ocean"
	LayerLand      LayerKind = "land"
	LayerRivers    LayerKind = "rivers"
	LayerCoastline LayerKind = "coastline"
)

// drawing order, bottom first
var layerOrder = []LayerKind{LayerOcean, LayerLand, LayerRivers, LayerCoastline}

// Basemap holds the geometries of each available layer. Layers are read
// from <dir>/<kind>.geojson; any file may be absent.
type Basemap struct {
	layers map[LayerKind][]orb.Geometry
}

// EmptyBasemap has no layers; the plot shows only the ocean fill
func EmptyBasemap() *Basemap {
	return &Basemap{layers: make(map[LayerKind][]orb.Geometry)}
}

// LoadBasemap reads the GeoJSON layers found in dir. A missing file is
// logged and skipped; a malformed file is an error.
func LoadBasemap(dir string, base logger.Logger) (*Basemap, error) {
	log := logger.For(base, "Basemap")
	bm := EmptyBasemap()
	if dir == "" {
		log.Warning("no basemap directory configured, drawing ocean only", nil)
		return bm, nil
	}

	for _, kind := range layerOrder {
		path := filepath.Join(dir, string(kind)+".geojson")
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Warning("layer file not found", map[string]interface{}{
				"layer": string(kind),
				"path":  path,
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s layer: %w", kind, err)
		}

		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s layer: %w", kind, err)
		}
		geoms := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		bm.layers[kind] = geoms

		log.Debug("layer loaded", map[string]interface{}{
			"layer":    string(kind),
			"features": len(geoms),
		})
	}
	return bm, nil
}

// Has reports whether a layer was loaded
func (bm *Basemap) Has(kind LayerKind) bool {
	return len(bm.layers[kind]) > 0
}

// Add appends geometries to a layer
func (bm *Basemap) Add(kind LayerKind, geoms ...orb.Geometry) {
	bm.layers[kind] = append(bm.layers[kind], geoms...)
}

// Clip returns the layer's geometry restricted to the bounds, flattened
// into polygons and lines
func (bm *Basemap) Clip(kind LayerKind, b geo.Bounds) ([]orb.Polygon, []orb.LineString) {
	box := orb.Bound{
		Min: orb.Point{b.MinLon(), b.MinLat()},
		Max: orb.Point{b.MaxLon(), b.MaxLat()},
	}

	var polys []orb.Polygon
	var lines []orb.LineString
	for _, g := range bm.layers[kind] {
		if !g.Bound().Intersects(box) {
			continue
		}
		clipped := clip.Geometry(box, orb.Clone(g))
		if clipped == nil {
			continue
		}
		polys, lines = flatten(clipped, polys, lines)
	}
	return polys, lines
}

func flatten(g orb.Geometry, polys []orb.Polygon, lines []orb.LineString) ([]orb.Polygon, []orb.LineString) {
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) > 0 {
			polys = append(polys, v)
		}
	case orb.MultiPolygon:
		for _, p := range v {
			polys, lines = flatten(p, polys, lines)
		}
	case orb.Ring:
		polys = append(polys, orb.Polygon{v})
	case orb.LineString:
		if len(v) > 1 {
			lines = append(lines, v)
		}
	case orb.MultiLineString:
		for _, ls := range v {
			polys, lines = flatten(ls, polys, lines)
		}
	case orb.Collection:
		for _, c := range v {
			polys, lines = flatten(c, polys, lines)
		}
	}
	return polys, lines
}

// layerSeries draws clipped base map geometry beneath the tracks. It
// provides no values, so it never influences the axis ranges.
type layerSeries struct {
	name     string
	style    chart.Style
	polygons []orb.Polygon
	lines    []orb.LineString
	holeFill drawing.Color
}

func (ls layerSeries) GetName() string { return ls.name }
func (ls layerSeries) GetStyle() chart.Style { return ls.style }
func (ls layerSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ls layerSeries) Validate() error { return nil }
func (ls layerSeries) isEmpty() bool { return len(ls.polygons) == 0 && len(ls.lines) == 0 }

func (ls layerSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	project := func(p orb.Point) (int, int) {
		return canvasBox.Left + xrange.Translate(p[0]), canvasBox.Bottom - yrange.Translate(p[1])
	}

	for _, poly := range ls.polygons {
		tracePath(r, poly[0], project, true)
		r.SetFillColor(ls.style.FillColor)
		r.Fill()
		// interior rings are lakes and inland seas
		for _, hole := range poly[1:] {
			tracePath(r, hole, project, true)
			r.SetFillColor(ls.holeFill)
			r.Fill()
		}
	}

	if len(ls.lines) == 0 {
		return
	}
	r.SetStrokeColor(ls.style.StrokeColor)
	r.SetStrokeWidth(ls.style.StrokeWidth)
	for _, line := range ls.lines {
		tracePath(r, line, project, false)
		r.Stroke()
	}
}

func tracePath(r chart.Renderer, points []orb.Point, project func(orb.Point) (int, int), closed bool) {
	for i, p := range points {
		x, y := project(p)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	if closed {
		r.Close()
	}
}

// layerSeriesFor builds the series for the layers intersecting b, bottom first
func (bm *Basemap) layerSeriesFor(b geo.Bounds) []chart.Series {
	var out []chart.Series
	for _, kind := range layerOrder {
		polys, lines := bm.Clip(kind, b)
		ls := layerSeries{name: string(kind), holeFill: oceanColor}

		switch kind {
		case LayerOcean:
			ls.style = chart.Style{FillColor: oceanColor}
			ls.lines = nil
			ls.polygons = polys
			ls.holeFill = landColor
		case LayerLand:
			ls.style = chart.Style{FillColor: landColor}
			ls.polygons = polys
		case LayerRivers:
			ls.style = chart.Style{StrokeColor: riverColor, StrokeWidth: 0.8}
			ls.lines = append(lines, ringsAsLines(polys)...)
		case LayerCoastline:
			ls.style = chart.Style{StrokeColor: coastlineColor, StrokeWidth: 0.6}
			ls.lines = append(lines, ringsAsLines(polys)...)
		}

		if !ls.isEmpty() {
			out = append(out, ls)
		}
	}
	return out
}

func ringsAsLines(polys []orb.Polygon) []orb.LineString {
	var lines []orb.LineString
	for _, p := range polys {
		for _, ring := range p {
			lines = append(lines, orb.LineString(ring))
		}
	}
	return lines
}
