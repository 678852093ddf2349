package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trackplot/internal/app"
	"trackplot/internal/dispatch"
	"trackplot/internal/models"
	"trackplot/internal/services"
)

func plotCmd(e *env) *cobra.Command {
	var bounds services.BoundsInput

	cmd := &cobra.Command{
		Use:   "plot <dir>",
		Short: "Render every track of a folder to track_visualization.png",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.NewDispatcher(e.cfg, models.NewSession(args[0]), e.log)
			if err != nil {
				return err
			}
			out := &services.BufferSink{}
			err = d.Dispatch(cmd.Context(), dispatch.ActionPlot, dispatch.Request{Bounds: bounds}, out)
			fmt.Fprint(e.stdout, out.Text())
			return err
		},
	}
	cmd.Flags().StringVar(&bounds.Lon1, "lon1", "", "start longitude")
	cmd.Flags().StringVar(&bounds.Lon2, "lon2", "", "end longitude")
	cmd.Flags().StringVar(&bounds.Lat1, "lat1", "", "start latitude")
	cmd.Flags().StringVar(&bounds.Lat2, "lat2", "", "end latitude")
	for _, name := range []string{"lon1", "lon2", "lat1", "lat2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
