package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"trackplot/internal/geo"
	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/render"
	"trackplot/internal/stats"
	"trackplot/internal/tracks"
)

// BoundsInput is the raw text of the four bound prompts
type BoundsInput struct {
	Lon1 string
	Lon2 string
	Lat1 string
	Lat2 string
}

// PlotService renders every track of the selected folder, saves the image
// next to the data and hands it to the sink
type PlotService struct {
	plotter *render.Plotter
	logger  logger.Scoped
}

func NewPlotService(plotter *render.Plotter, log logger.Logger) *PlotService {
	return &PlotService{plotter: plotter, logger: logger.For(log, "PlotService")}
}

// Run validates the bounds, draws the tracks and saves the figure. Invalid
// bounds abort before any file is read or written.
func (s *PlotService) Run(ctx context.Context, session *models.Session, in BoundsInput, out Sink) (*render.Figure, error) {
	if !session.HasDir() {
		out.Clear()
		out.Append(NoFolderMessage)
		return nil, ErrNoFolder
	}
	dir := session.Dir()

	bounds, err := geo.ParseBounds(in.Lon1, in.Lon2, in.Lat1, in.Lat2)
	if err != nil {
		out.Clear()
		out.Append(InvalidInputMessage)
		s.logger.Warning("rejected bounds", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	files, err := tracks.ListCSV(dir)
	if err != nil {
		out.Append(fmt.Sprintf("Error reading folder %s: %v", dir, err))
		return nil, err
	}

	series := make([]render.Series, 0, len(files))
	for idx, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		track, err := tracks.LoadTrack(path)
		if err != nil {
			name := filepath.Base(path)
			out.Append(stats.ReadErrorMessage(name, err))
			s.logger.Error(err, map[string]interface{}{"file": name})
			continue
		}
		series = append(series, render.Series{Name: track.Name, Index: idx, Points: track.Points})
	}

	fig, err := s.plotter.Compose(series, bounds)
	if err != nil {
		out.Append(fmt.Sprintf("Failed to render plot: %v", err))
		s.logger.Error(err, nil)
		return nil, err
	}

	path, err := s.plotter.Save(fig.Image, dir)
	if err != nil {
		out.Append(fmt.Sprintf("Failed to render plot: %v", err))
		s.logger.Error(err, map[string]interface{}{"dir": dir})
		return nil, err
	}
	out.Append(fmt.Sprintf("Image saved to: %s", path))
	out.ShowImage(fig.Image, path)

	fields := map[string]interface{}{
		"tracks": fig.Tracks,
		"points": fig.Points,
		"path":   path,
	}
	if info, err := os.Stat(path); err == nil {
		fields["size"] = humanize.Bytes(uint64(info.Size()))
	}
	s.logger.Info("plot finished", fields)
	return fig, nil
}
