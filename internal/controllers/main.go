package controllers

import (
	"context"
	"errors"
	"sync"

	"trackplot/internal/dispatch"
	"trackplot/internal/geo"
	"trackplot/internal/logger"
	"trackplot/internal/services"
)

// View is what the controller needs from the window
type View interface {
	services.Sink

	SetSelectFolderHandler(handler func())
	SetStatisticsHandler(handler func())
	SetPlotHandler(handler func())

	SetFolder(path string)
	UpdateStatus(status string)
	SetActionActive(active bool)

	ShowFolderDialog(callback func(path string, err error))
	ShowBoundsForm(initial services.BoundsInput, callback func(services.BoundsInput))
	ShowError(err error)
}

// MainController turns view events into dispatched actions
type MainController struct {
	dispatcher *dispatch.Dispatcher
	view       View
	logger     logger.Logger
	ctx        context.Context

	mu         sync.Mutex
	lastBounds services.BoundsInput
}

func NewMainController(ctx context.Context, dispatcher *dispatch.Dispatcher, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		dispatcher: dispatcher,
		logger:     log,
		ctx:        ctx,
	}
}

// SetMainView associates the view with this controller and wires its buttons
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	view.SetSelectFolderHandler(mc.SelectFolder)
	view.SetStatisticsHandler(mc.ShowStatistics)
	view.SetPlotHandler(mc.PlotTracks)
	view.SetFolder(mc.dispatcher.Session().Dir())
}

// SelectFolder opens the folder dialog. Cancelling keeps the current folder.
func (mc *MainController) SelectFolder() {
	mc.view.ShowFolderDialog(func(path string, err error) {
		if err != nil {
			mc.handleError(err)
			return
		}
		if path == "" {
			return
		}
		if err := mc.run(dispatch.ActionSelectFolder, dispatch.Request{Folder: path}); err != nil {
			return
		}
		mc.view.SetFolder(mc.dispatcher.Session().Dir())
		mc.view.UpdateStatus("Folder selected")
	})
}

// ShowStatistics runs the statistics action
func (mc *MainController) ShowStatistics() {
	if err := mc.run(dispatch.ActionStatistics, dispatch.Request{}); err == nil {
		mc.view.UpdateStatus("Statistics updated")
	}
}

// PlotTracks asks for the bounds and runs the plot action. The bounds
// prompt is skipped when no folder is selected.
func (mc *MainController) PlotTracks() {
	if !mc.dispatcher.Session().HasDir() {
		_ = mc.run(dispatch.ActionPlot, dispatch.Request{})
		return
	}

	mc.mu.Lock()
	initial := mc.lastBounds
	mc.mu.Unlock()

	mc.view.ShowBoundsForm(initial, func(in services.BoundsInput) {
		mc.mu.Lock()
		mc.lastBounds = in
		mc.mu.Unlock()

		if err := mc.run(dispatch.ActionPlot, dispatch.Request{Bounds: in}); err == nil {
			mc.view.UpdateStatus("Plot saved")
		}
	})
}

func (mc *MainController) run(action string, req dispatch.Request) error {
	mc.view.SetActionActive(true)
	defer mc.view.SetActionActive(false)

	err := mc.dispatcher.Dispatch(mc.ctx, action, req, mc.view)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNoFolder):
		mc.view.UpdateStatus("No folder selected")
	case errors.Is(err, geo.ErrInvalidBounds):
		mc.view.UpdateStatus("Invalid bounds")
	case errors.Is(err, dispatch.ErrBusy):
		mc.logger.Debug("MainController", "action ignored while busy", map[string]interface{}{"action": action})
	case action == dispatch.ActionSelectFolder:
		mc.handleError(err)
	default:
		mc.view.UpdateStatus(action + " failed")
	}
	return err
}

// handleError shows err in a dialog and logs it
func (mc *MainController) handleError(err error) {
	mc.logger.Error("MainController", err, nil)
	mc.view.ShowError(err)
}
