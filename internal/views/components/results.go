package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultsPanel is the scrollable text area that actions append lines to
type ResultsPanel struct {
	label  *widget.Label
	scroll *container.Scroll
	lines  []string
}

func NewResultsPanel() *ResultsPanel {
	rp := &ResultsPanel{}
	rp.label = widget.NewLabel("")
	rp.label.Wrapping = fyne.TextWrapWord
	rp.label.TextStyle = fyne.TextStyle{Monospace: true}
	rp.scroll = container.NewVScroll(rp.label)
	rp.scroll.SetMinSize(fyne.NewSize(0, 160))
	return rp
}

// Clear removes all lines
func (rp *ResultsPanel) Clear() {
	rp.lines = nil
	rp.label.SetText("")
	rp.scroll.ScrollToTop()
}

// Append adds one line and scrolls to it
func (rp *ResultsPanel) Append(line string) {
	rp.lines = append(rp.lines, line)
	rp.label.SetText(strings.Join(rp.lines, "\n"))
	rp.scroll.ScrollToBottom()
}

// Lines returns a copy of the displayed lines
func (rp *ResultsPanel) Lines() []string {
	return append([]string(nil), rp.lines...)
}

// Text returns the displayed text
func (rp *ResultsPanel) Text() string {
	return rp.label.Text
}

func (rp *ResultsPanel) GetContainer() fyne.CanvasObject {
	return rp.scroll
}
