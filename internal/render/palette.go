package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// trackPalette is the ten-colour categorical palette used for tracks
var trackPalette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
	drawing.ColorFromHex("bcbd22"),
	drawing.ColorFromHex("17becf"),
}

// TrackColor returns the colour for the index-th track, cycling the palette
func TrackColor(index int) drawing.Color {
	if index < 0 {
		index = -index
	}
	return trackPalette[index%len(trackPalette)]
}

var (
	oceanColor     = drawing.ColorFromHex("cfe3f3")
	landColor      = drawing.ColorFromHex("efe9dc")
	coastlineColor = drawing.ColorFromHex("333333")
	riverColor     = drawing.ColorFromHex("7fa7d1")
)
