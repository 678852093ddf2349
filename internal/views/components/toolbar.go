package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the folder selection and the two actions
type Toolbar struct {
	container        *fyne.Container
	selectButton     *widget.Button
	statisticsButton *widget.Button
	plotButton       *widget.Button
	folderLabel      *widget.Label

	// Event handlers
	selectHandler     func()
	statisticsHandler func()
	plotHandler       func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.selectButton = widget.NewButton("Select Folder", nil)
	t.selectButton.Importance = widget.HighImportance

	t.statisticsButton = widget.NewButton("Show Statistics", nil)
	t.plotButton = widget.NewButton("Plot Tracks", nil)

	t.folderLabel = widget.NewLabel("No folder selected")
	t.folderLabel.Truncation = fyne.TextTruncateEllipsis
}

func (t *Toolbar) buildLayout() {
	actions := container.NewHBox(
		t.selectButton,
		widget.NewSeparator(),
		t.statisticsButton,
		t.plotButton,
	)
	t.container = container.NewBorder(nil, nil, actions, nil, t.folderLabel)
}

func (t *Toolbar) setupEventHandlers() {
	t.selectButton.OnTapped = func() {
		if t.selectHandler != nil {
			t.selectHandler()
		}
	}
	t.statisticsButton.OnTapped = func() {
		if t.statisticsHandler != nil {
			t.statisticsHandler()
		}
	}
	t.plotButton.OnTapped = func() {
		if t.plotHandler != nil {
			t.plotHandler()
		}
	}
}

func (t *Toolbar) SetSelectHandler(handler func()) {
	t.selectHandler = handler
}

func (t *Toolbar) SetStatisticsHandler(handler func()) {
	t.statisticsHandler = handler
}

func (t *Toolbar) SetPlotHandler(handler func()) {
	t.plotHandler = handler
}

// SetFolder shows the selected folder next to the buttons
func (t *Toolbar) SetFolder(path string) {
	if path == "" {
		path = "No folder selected"
	}
	t.folderLabel.SetText(path)
}

// Folder returns the text of the folder label
func (t *Toolbar) Folder() string {
	return t.folderLabel.Text
}

// SetActive disables the buttons while an action runs
func (t *Toolbar) SetActive(active bool) {
	for _, b := range []*widget.Button{t.selectButton, t.statisticsButton, t.plotButton} {
		if active {
			b.Disable()
		} else {
			b.Enable()
		}
	}
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
