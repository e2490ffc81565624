package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the clrsgraphs CLI and returns an error if any command
// fails. This is the main entry point for the application.
//
// The root command wires up the algorithm subcommands, configures logging
// based on the --verbose flag, and executes the command tree. Every
// subcommand reads its graph from the file named by --file.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "clrsgraphs",
		Short:        "Run classic graph algorithms over a TOML-described graph",
		Long:         `clrsgraphs loads a weighted graph from a TOML description file and runs breadth-first search, depth-first search, Dijkstra, or Bellman-Ford over it, printing distances, visit orders, and reconstructed paths.`,
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
	root.PersistentFlags().StringP("file", "f", "graph.toml", "path to the TOML graph description")

	root.AddCommand(newEdgesCmd())
	root.AddCommand(newBFSCmd())
	root.AddCommand(newDFSCmd())
	root.AddCommand(newDijkstraCmd())
	root.AddCommand(newBellmanFordCmd())

	return root
}
