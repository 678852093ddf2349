package views

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"trackplot/internal/services"
)

func TestMainViewSink(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	view := NewMainView(a.NewWindow("test"))

	view.Append("CSV files: 2")
	view.Append("Total size: 0.00 MB")
	assert.Equal(t, "CSV files: 2\nTotal size: 0.00 MB", view.ResultsText())

	view.Clear()
	assert.Empty(t, view.ResultsText())

	assert.False(t, view.HasPlot())
	view.ShowImage(image.NewRGBA(image.Rect(0, 0, 40, 30)), "/nowhere/track_visualization.png")
	assert.True(t, view.HasPlot())
}

func TestMainViewFolderLabel(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	view := NewMainView(a.NewWindow("test"))

	view.SetFolder("/data/tracks")
	assert.Equal(t, "/data/tracks", view.Toolbar().Folder())
	view.SetFolder("")
	assert.Equal(t, "No folder selected", view.Toolbar().Folder())
}

func TestBoundsFormRoundTrip(t *testing.T) {
	test.NewApp()
	in := services.BoundsInput{Lon1: "100", Lon2: "120", Lat1: "10", Lat2: "30"}
	form := NewBoundsForm(in)
	assert.Len(t, form.Items(), 4)
	assert.Equal(t, in, form.Input())

	form.lat2.SetText("north")
	assert.Equal(t, "north", form.Input().Lat2)
}
