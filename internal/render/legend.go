package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type legendEntry struct {
	name  string
	color drawing.Color
}

const (
	legendPadding  = 8
	legendFontSize = 9.0
	legendSwatch   = 4.0
)

// legend draws the track key in the upper left of the map area. Base map
// layers are not listed.
func legend(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		font := defaults.Font
		if font == nil {
			var err error
			if font, err = chart.GetDefaultFont(); err != nil {
				return
			}
		}
		r.SetFont(font)
		r.SetFontSize(legendFontSize)
		r.SetFontColor(drawing.ColorBlack)

		lineHeight, textWidth := 0, 0
		for _, e := range entries {
			tb := r.MeasureText(e.name)
			if tb.Height() > lineHeight {
				lineHeight = tb.Height()
			}
			if tb.Width() > textWidth {
				textWidth = tb.Width()
			}
		}
		lineHeight += 6

		swatchSpace := int(legendSwatch*2) + legendPadding
		box := chart.Box{
			Left: cb.Left + 10,
			Top:  cb.Top + 10,
		}
		box.Right = box.Left + legendPadding*2 + swatchSpace + textWidth
		box.Bottom = box.Top + legendPadding*2 + lineHeight*len(entries)

		r.SetFillColor(drawing.ColorWhite.WithAlpha(220))
		r.SetStrokeColor(drawing.ColorFromHex("999999"))
		r.SetStrokeWidth(1)
		r.MoveTo(box.Left, box.Top)
		r.LineTo(box.Right, box.Top)
		r.LineTo(box.Right, box.Bottom)
		r.LineTo(box.Left, box.Bottom)
		r.Close()
		r.FillStroke()

		for i, e := range entries {
			baseline := box.Top + legendPadding + lineHeight*(i+1) - 6
			cx := box.Left + legendPadding + int(legendSwatch)
			cy := baseline - lineHeight/2 + 3

			r.SetFillColor(e.color)
			r.SetStrokeColor(e.color)
			r.SetStrokeWidth(1)
			r.Circle(legendSwatch, cx, cy)
			r.FillStroke()

			r.SetFontColor(drawing.ColorBlack)
			r.Text(e.name, box.Left+legendPadding+swatchSpace, baseline)
		}
	}
}
