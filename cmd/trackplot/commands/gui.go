package commands

import (
	"github.com/spf13/cobra"

	"trackplot/internal/app"
)

func guiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "gui [dir]",
		Short: "Open the desktop window (default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			application, err := app.NewApplication(cmd.Context(), e.cfg, e.log, dir)
			if err != nil {
				e.log.Error("Main", err, nil)
				return err
			}
			return application.Run()
		},
	}
}
