package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"trackplot/internal/config"
	"trackplot/internal/controllers"
	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/shutdown"
	"trackplot/internal/views"
)

const (
	AppName         = "Track Plotter"
	AppID           = "com.trackplot.desktop"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 640
	MinWindowHeight = 480
)

// Application is the desktop window and everything behind it
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
	loop       *shutdown.Loop

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApplication creates the window and wires view, controller and
// dispatcher together. dir preselects a data folder when not empty.
func NewApplication(ctx context.Context, cfg *config.Configuration, log logger.Logger, dir string) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	size := windowSize(cfg)
	window.Resize(size)
	window.CenterOnScreen()
	window.SetMaster()

	appCtx, appCancel := context.WithCancel(ctx)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", size.Width, size.Height),
		"basemap_dir": cfg.Basemap.Dir,
	})

	dispatcher, err := NewDispatcher(cfg, models.NewSession(dir), log)
	if err != nil {
		appCancel()
		return nil, err
	}

	view := views.NewMainView(window)
	controller := controllers.NewMainController(appCtx, dispatcher, log)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(log),
		loop:       shutdown.NewLoop(fyneApp.Quit),
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.shutdown.Register("context", shutdown.Func(appCancel))
	application.shutdown.Register("fyne", application.loop)
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"actions": dispatcher.Actions(),
	})
	return application, nil
}

// windowSize applies the configured size with a floor
func windowSize(cfg *config.Configuration) fyne.Size {
	w, h := cfg.Window.Width, cfg.Window.Height
	if w < MinWindowWidth {
		w = MinWindowWidth
	}
	if h < MinWindowHeight {
		h = MinWindowHeight
	}
	return fyne.NewSize(w, h)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.cancel()
		a.window.Close()
	})
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() error {
	a.shutdown.Listen()

	go func() {
		<-a.ctx.Done()
		a.logger.Debug("Application", "context cancelled", nil)
		a.shutdown.Shutdown()
	}()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.loop.Stopped()
	a.shutdown.Shutdown()
	a.logger.Info("Application", "application stopped", nil)
	return nil
}
