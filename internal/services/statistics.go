package services

import (
	"context"
	"fmt"

	"trackplot/internal/logger"
	"trackplot/internal/models"
	"trackplot/internal/stats"
)

// StatisticsService runs the aggregator for the selected folder and writes
// warnings and the summary to a sink
type StatisticsService struct {
	aggregator *stats.Aggregator
	options    stats.ReportOptions
	logger     logger.Scoped
}

func NewStatisticsService(aggregator *stats.Aggregator, opts stats.ReportOptions, log logger.Logger) *StatisticsService {
	return &StatisticsService{aggregator: aggregator, options: opts, logger: logger.For(log, "StatisticsService")}
}

// Run aggregates session's folder. The returned aggregate is nil when the
// action was aborted.
func (s *StatisticsService) Run(ctx context.Context, session *models.Session, out Sink) (*models.Aggregate, error) {
	if !session.HasDir() {
		out.Clear()
		out.Append(NoFolderMessage)
		return nil, ErrNoFolder
	}
	dir := session.Dir()

	s.logger.Info("statistics requested", map[string]interface{}{"dir": dir})

	agg, err := s.aggregator.Aggregate(ctx, dir)
	if err != nil {
		out.Append(fmt.Sprintf("Error reading folder %s: %v", dir, err))
		s.logger.Error(err, map[string]interface{}{"dir": dir})
		return nil, err
	}

	for _, w := range agg.Warnings {
		out.Append(w)
	}
	appendBlock(out, stats.FormatReport(agg, s.options))
	return agg, nil
}
