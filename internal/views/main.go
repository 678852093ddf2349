package views

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"trackplot/internal/services"
	"trackplot/internal/views/components"
)

// MainView is the single application window. It also serves as the output
// sink for actions: text goes to the results panel, images to the plot
// display.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	results       *components.ResultsPanel
	plotDisplay   *components.PlotDisplay
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	selectFolderHandler func()
	statisticsHandler   func()
	plotHandler         func()
}

var _ services.Sink = (*MainView)(nil)

// NewMainView builds the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.results = components.NewResultsPanel()
	mv.plotDisplay = components.NewPlotDisplay()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	content := container.NewVSplit(mv.results.GetContainer(), mv.plotDisplay.GetContainer())
	content.SetOffset(0.3)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		content,
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetSelectHandler(func() {
		if mv.selectFolderHandler != nil {
			mv.selectFolderHandler()
		}
	})
	mv.toolbar.SetStatisticsHandler(func() {
		if mv.statisticsHandler != nil {
			mv.statisticsHandler()
		}
	})
	mv.toolbar.SetPlotHandler(func() {
		if mv.plotHandler != nil {
			mv.plotHandler()
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetSelectFolderHandler(handler func()) {
	mv.selectFolderHandler = handler
}

func (mv *MainView) SetStatisticsHandler(handler func()) {
	mv.statisticsHandler = handler
}

func (mv *MainView) SetPlotHandler(handler func()) {
	mv.plotHandler = handler
}

// Sink methods - called by services on the UI goroutine

// Clear empties the results panel
func (mv *MainView) Clear() {
	mv.results.Clear()
}

// Append adds a line to the results panel
func (mv *MainView) Append(line string) {
	mv.results.Append(line)
}

// ShowImage replaces the displayed plot
func (mv *MainView) ShowImage(img image.Image, path string) {
	mv.plotDisplay.SetPlot(img, path)

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	w, h := mv.plotDisplay.PlotSize()
	mv.statusBar.SetPlotInfo(w, h, size)
}

// UI update methods - called by controller

// SetFolder shows the selected folder in the toolbar
func (mv *MainView) SetFolder(path string) {
	mv.toolbar.SetFolder(path)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetActionActive disables the toolbar while an action runs
func (mv *MainView) SetActionActive(active bool) {
	mv.toolbar.SetActive(active)
}

// ShowFolderDialog asks for a data folder. callback receives "" when the
// dialog is dismissed.
func (mv *MainView) ShowFolderDialog(callback func(path string, err error)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			callback("", err)
			return
		}
		callback(uri.Path(), nil)
	}, mv.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// ShowBoundsForm asks for the four map bounds, prefilled with initial.
// callback is invoked only when the user confirms.
func (mv *MainView) ShowBoundsForm(initial services.BoundsInput, callback func(services.BoundsInput)) {
	form := NewBoundsForm(initial)
	d := dialog.NewForm("Map Bounds", "Plot", "Cancel", form.Items(), func(confirmed bool) {
		if confirmed {
			callback(form.Input())
		}
	}, mv.window)
	d.Resize(fyne.NewSize(360, 0))
	d.Show()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// ResultsText returns the text currently shown in the results panel
func (mv *MainView) ResultsText() string {
	return mv.results.Text()
}

// HasPlot reports whether a plot is displayed
func (mv *MainView) HasPlot() bool {
	return mv.plotDisplay.HasPlot()
}

// Toolbar exposes the toolbar for tests
func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

// BoundsForm holds the four entries of the bounds dialog
type BoundsForm struct {
	lon1 *widget.Entry
	lon2 *widget.Entry
	lat1 *widget.Entry
	lat2 *widget.Entry
}

func NewBoundsForm(initial services.BoundsInput) *BoundsForm {
	entry := func(placeholder, text string) *widget.Entry {
		e := widget.NewEntry()
		e.SetPlaceHolder(placeholder)
		e.SetText(text)
		return e
	}
	return &BoundsForm{
		lon1: entry("start longitude", initial.Lon1),
		lon2: entry("end longitude", initial.Lon2),
		lat1: entry("start latitude", initial.Lat1),
		lat2: entry("end latitude", initial.Lat2),
	}
}

func (f *BoundsForm) Items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Longitude 1", f.lon1),
		widget.NewFormItem("Longitude 2", f.lon2),
		widget.NewFormItem("Latitude 1", f.lat1),
		widget.NewFormItem("Latitude 2", f.lat2),
	}
}

// Input returns the entered text unparsed
func (f *BoundsForm) Input() services.BoundsInput {
	return services.BoundsInput{
		Lon1: f.lon1.Text,
		Lon2: f.lon2.Text,
		Lat1: f.lat1.Text,
		Lat2: f.lat2.Text,
	}
}
