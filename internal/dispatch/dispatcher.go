// Package dispatch maps named user actions to handlers. Both the window's
// buttons and the command line go through the same table.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/services"
)

// Action names
const (
	ActionSelectFolder = "select-folder"
	ActionStatistics   = "statistics"
	ActionPlot         = "plot"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBusy          = errors.New("another action is running")
)

// Request carries the user input an action needs
type Request struct {
	Folder string
	Bounds services.BoundsInput
}

// Handler performs one action against the session, writing to out
type Handler func(ctx context.Context, session *models.Session, req Request, out services.Sink) error

// Dispatcher runs one action at a time
type Dispatcher struct {
	session  *models.Session
	handlers map[string]Handler
	logger   logger.Scoped
	timings  *Timings
	running  sync.Mutex
}

func New(session *models.Session, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		session:  session,
		handlers: make(map[string]Handler),
		logger:   logger.For(log, "Dispatcher"),
		timings:  NewTimings(),
	}
}

// NewDefault registers the select-folder, statistics and plot actions
func NewDefault(session *models.Session, statistics *services.StatisticsService, plots *services.PlotService, log logger.Logger) *Dispatcher {
	d := New(session, log)
	d.Register(ActionSelectFolder, SelectFolder)
	d.Register(ActionStatistics, func(ctx context.Context, s *models.Session, _ Request, out services.Sink) error {
		_, err := statistics.Run(ctx, s, out)
		return err
	})
	d.Register(ActionPlot, func(ctx context.Context, s *models.Session, req Request, out services.Sink) error {
		_, err := plots.Run(ctx, s, req.Bounds, out)
		return err
	})
	return d
}

// Register binds name to h, replacing any previous handler
func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers[name] = h
}

// Actions lists the registered action names
func (d *Dispatcher) Actions() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Timings returns the per-action durations recorded so far
func (d *Dispatcher) Timings() *Timings {
	return d.timings
}

// Session returns the state shared by all actions
func (d *Dispatcher) Session() *models.Session {
	return d.session
}

// Dispatch runs the named action synchronously. A second action started
// while one is in progress fails with ErrBusy.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, req Request, out services.Sink) error {
	h, ok := d.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if !d.running.TryLock() {
		return ErrBusy
	}
	defer d.running.Unlock()

	stop := d.timings.Start(name)
	err := h(ctx, d.session, req, out)
	elapsed := stop()

	fields := map[string]interface{}{
		"action":  name,
		"elapsed": elapsed.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		d.logger.Warning("action aborted", fields)
	} else {
		d.logger.Debug("action completed", fields)
	}
	return err
}

// SelectFolder stores req.Folder in the session and clears previous
// output. An empty folder (dialog cancelled) leaves the session untouched.
func SelectFolder(_ context.Context, session *models.Session, req Request, out services.Sink) error {
	if req.Folder == "" {
		return nil
	}
	info, err := os.Stat(req.Folder)
	if err != nil {
		return fmt.Errorf("cannot open folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot open folder: %s is not a directory", req.Folder)
	}
	session.SetDir(req.Folder)
	out.Clear()
	return nil
}
