// Command txc2gtfs is a thin filesystem-path-in, structured-error-out CLI
// over the conversion, validation, and query packages. It never interprets
// TXC or GTFS content itself; every subcommand is a wrapper over a library
// call.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runLogger returns a logger tagged with a per-invocation run id, so that
// log lines from a single convert/validate/query call can be correlated in
// aggregated log output. The id never reaches any written GTFS/TXC bytes.
func runLogger(command string) *slog.Logger {
	return slog.Default().With("command", command, "run_id", uuid.NewString())
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "txc2gtfs",
		Short:         "Convert, validate, and query TransXChange/GTFS feeds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newQueryCmd())
	return cmd
}
