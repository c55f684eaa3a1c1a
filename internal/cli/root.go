package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the algokit CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag into a context-carried logger;
// every demo subcommand retrieves it with loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "algokit",
		Short:        "algokit demonstrates the library's algorithms on sample data",
		Long:         `algokit runs the library's algorithm reports — deduplication, scheduling, sessions, brackets — on built-in demonstration data or on a YAML scenario file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
