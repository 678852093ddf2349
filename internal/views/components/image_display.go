package components

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	PlotAreaWidth  = 600
	PlotAreaHeight = 450
)

// PlotDisplay shows the most recent rendered map
type PlotDisplay struct {
	container   *fyne.Container
	plotImage   *canvas.Image
	placeholder image.Image
	caption     *widget.Label

	hasPlot bool
	path    string
}

// NewPlotDisplay creates the plot canvas with an empty placeholder
func NewPlotDisplay() *PlotDisplay {
	display := &PlotDisplay{}
	display.createComponents()
	display.setupLayout()
	return display
}

func (pd *PlotDisplay) createComponents() {
	pd.placeholder = createPlaceholderImage()

	pd.plotImage = canvas.NewImageFromImage(pd.placeholder)
	pd.plotImage.FillMode = canvas.ImageFillContain
	pd.plotImage.ScaleMode = canvas.ImageScaleSmooth
	pd.plotImage.SetMinSize(fyne.NewSize(PlotAreaWidth, PlotAreaHeight))

	pd.caption = widget.NewLabel("Plot the tracks to see them here")
	pd.caption.Alignment = fyne.TextAlignCenter
}

// createPlaceholderImage draws a light gray panel with a border
func createPlaceholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlotAreaWidth, PlotAreaHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 240, G: 240, B: 240, A: 255}), image.Point{}, draw.Src)

	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for x := 0; x < PlotAreaWidth; x++ {
		img.Set(x, 0, borderColor)
		img.Set(x, PlotAreaHeight-1, borderColor)
	}
	for y := 0; y < PlotAreaHeight; y++ {
		img.Set(0, y, borderColor)
		img.Set(PlotAreaWidth-1, y, borderColor)
	}
	return img
}

func (pd *PlotDisplay) setupLayout() {
	background := canvas.NewRectangle(color.RGBA{R: 252, G: 252, B: 252, A: 255})
	pd.container = container.NewBorder(
		nil, pd.caption, nil, nil,
		container.NewStack(background, pd.plotImage),
	)
}

// SetPlot replaces the displayed map. A nil image restores the placeholder.
func (pd *PlotDisplay) SetPlot(img image.Image, path string) {
	if img == nil {
		pd.plotImage.Image = pd.placeholder
		pd.hasPlot = false
		pd.path = ""
		pd.caption.SetText("Plot the tracks to see them here")
	} else {
		pd.plotImage.Image = img
		pd.hasPlot = true
		pd.path = path
		pd.caption.SetText(path)
	}
	pd.plotImage.Refresh()
}

// HasPlot reports whether a rendered map is shown
func (pd *PlotDisplay) HasPlot() bool {
	return pd.hasPlot
}

// Path returns the file the shown map was saved to
func (pd *PlotDisplay) Path() string {
	return pd.path
}

// PlotSize returns the pixel size of the shown map
func (pd *PlotDisplay) PlotSize() (int, int) {
	if !pd.hasPlot || pd.plotImage.Image == nil {
		return 0, 0
	}
	bounds := pd.plotImage.Image.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (pd *PlotDisplay) GetContainer() *fyne.Container {
	return pd.container
}
