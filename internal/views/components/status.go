package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
)

// StatusBar displays the last action and the shown plot
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	plotInfo    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.statusLabel = widget.NewLabel("Ready")
	sb.plotInfo = widget.NewLabel("No plot")
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.plotInfo,
	)
	return sb
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetPlotInfo shows the size of the displayed plot and its file
func (sb *StatusBar) SetPlotInfo(width, height int, fileSize int64) {
	sb.plotInfo.SetText(fmt.Sprintf("Plot: %dx%d, %s", width, height, humanize.Bytes(uint64(fileSize))))
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.plotInfo.SetText("No plot")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
