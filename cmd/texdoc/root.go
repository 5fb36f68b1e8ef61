package main

import (
	"io"

	"github.com/fwojciec/texdoc/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds state shared by the subcommands.
type app struct {
	out       io.Writer
	styles    Styles
	verbosity int
	closeLog  func() error
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, styles: NewStyles(DefaultTheme())}

	root := &cobra.Command{
		Use:   "texdoc",
		Short: "Build LaTeX documents from structured input",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.closeLog = logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closeLog == nil {
				return nil
			}
			return a.closeLog()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(
		a.newBuildCmd(),
		a.newBatchCmd(),
		a.newServeCmd(),
		a.newFormatCmd(),
	)
	return root
}
