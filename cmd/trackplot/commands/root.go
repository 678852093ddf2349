// Package commands implements the trackplot command line: the desktop
// window by default, plus headless stats and plot commands.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"trackplot/internal/config"
	"trackplot/internal/logger"
)

// env is the state shared by all subcommands, filled in by the root's
// PersistentPreRunE
type env struct {
	configFile string
	cfg        *config.Configuration
	log        logger.Logger
	stdout     io.Writer
}

func Execute() error {
	return newRootCmd(os.Stdout, nil).ExecuteContext(context.Background())
}

// newRootCmd builds the command tree. A nil log is replaced by a logger
// built from the loaded configuration.
func newRootCmd(stdout io.Writer, log logger.Logger) *cobra.Command {
	e := &env{stdout: stdout, log: log}

	root := &cobra.Command{
		Use:           "trackplot",
		Short:         "Summarize and map folders of CSV track files",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.configFile)
			if err != nil {
				return err
			}
			e.cfg = cfg
			if e.log == nil {
				e.log = logger.New(cfg.Log.Format, cfg.Log.Level)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&e.configFile, "config", "", "config file (default ./trackplot.yaml or ~/.config/trackplot/trackplot.yaml)")

	gui := guiCmd(e)
	root.RunE = gui.RunE
	root.Args = cobra.MaximumNArgs(1)

	root.AddCommand(gui, statsCmd(e), plotCmd(e))
	root.SetOut(stdout)
	return root
}
