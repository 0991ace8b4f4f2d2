// Package cmd provides the command-line interface for wavestring.
package cmd

import (
	"io"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "wavestring",
		Short: "Simulate a vibrating string with the explicit finite-difference scheme.",
		Long: `wavestring solves the 1-D wave equation for a string with fixed ends ` +
			`and exports the displacement field for plotting and animation.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().Bool("verbose", false, "log at debug level")

	root.AddCommand(newRunCmd(), newListCmd())

	return root
}

// newLogger returns a logfmt logger on w filtered at info, or debug when verbose.
func newLogger(w io.Writer, verbose bool) kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}

	return level.NewFilter(logger, level.AllowInfo())
}

// Execute runs the root command and exits through atexit so that exit
// handlers, such as recorder flushes, run before the process ends.
func Execute() {
	atexit.Exit(exitCode(NewRootCmd(os.Stdout, os.Stderr).Execute()))
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}

	return 0
}
