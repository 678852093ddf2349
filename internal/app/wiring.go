package app

import (
	"fmt"

	"trackplot/internal/config"
	"trackplot/internal/dispatch"
	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/render"
	"trackplot/internal/services"
	"trackplot/internal/stats"
)

// PlotOptions converts the plot settings into renderer options
func PlotOptions(cfg *config.Configuration) render.Options {
	return render.Options{
		Width:      cfg.Plot.Width,
		Height:     cfg.Plot.Height,
		TickStep:   cfg.Plot.TickStep,
		DotSize:    cfg.Plot.DotSize,
		OutputName: cfg.Plot.OutputName,
	}
}

// ReportOptions converts the report settings into formatter options
func ReportOptions(cfg *config.Configuration) stats.ReportOptions {
	return stats.ReportOptions{ShowDateRange: cfg.Report.ShowDateRange}
}

// NewDispatcher builds the services behind every action and registers them
// on a dispatcher bound to session
func NewDispatcher(cfg *config.Configuration, session *models.Session, log logger.Logger) (*dispatch.Dispatcher, error) {
	basemap, err := render.LoadBasemap(cfg.Basemap.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load basemap: %w", err)
	}

	statistics := services.NewStatisticsService(stats.NewAggregator(log), ReportOptions(cfg), log)
	plots := services.NewPlotService(render.NewPlotter(PlotOptions(cfg), basemap, log), log)
	return dispatch.NewDefault(session, statistics, plots, log), nil
}
