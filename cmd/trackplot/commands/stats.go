package commands

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trackplot/internal/app"
	"trackplot/internal/dispatch"
	"trackplot/internal/models"
	"trackplot/internal/services"
	"trackplot/internal/stats"
)

func statsCmd(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <dir>",
		Short: "Print file, coordinate and column statistics for a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text":
				return runStatsText(cmd, e, args[0])
			case "json", "yaml":
				return runStatsStructured(cmd, e, args[0], format)
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func runStatsText(cmd *cobra.Command, e *env, dir string) error {
	d, err := app.NewDispatcher(e.cfg, models.NewSession(dir), e.log)
	if err != nil {
		return err
	}
	out := &services.BufferSink{}
	err = d.Dispatch(cmd.Context(), dispatch.ActionStatistics, dispatch.Request{}, out)
	fmt.Fprint(e.stdout, out.Text())
	return err
}

func runStatsStructured(cmd *cobra.Command, e *env, dir, format string) error {
	agg, err := stats.NewAggregator(e.log).Aggregate(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if agg.FileCount == 0 {
		fmt.Fprintln(e.stdout, stats.NoFilesMessage)
		return nil
	}
	summary := stats.Summarize(agg, app.ReportOptions(e.cfg))

	if format == "yaml" {
		enc := yaml.NewEncoder(e.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(e.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
