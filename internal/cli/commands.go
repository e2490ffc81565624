package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/BogdanFloris/CLRS-Library/bellmanford"
	"github.com/BogdanFloris/CLRS-Library/bfs"
	"github.com/BogdanFloris/CLRS-Library/core"
	"github.com/BogdanFloris/CLRS-Library/dfs"
	"github.com/BogdanFloris/CLRS-Library/dijkstra"
)

// graphFromFlags loads the graph named by the persistent --file flag.
func graphFromFlags(cmd *cobra.Command) (*core.Graph, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(cmd.Context())
	start := time.Now()
	g, err := loadGraph(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph loaded", "path", path,
		"vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"elapsed", time.Since(start).Round(time.Microsecond))

	return g, nil
}

// writePathIfRequested renders the predecessor-chain path source→dest when
// a --dest flag was given.
func writePathIfRequested(w io.Writer, g *core.Graph, source, dest string) error {
	if dest == "" {
		return nil
	}
	writeTitle(w, fmt.Sprintf("Path %s → %s", source, dest))

	return g.WritePath(w, source, dest)
}

func newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List the (from, to, weight) triples of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphFromFlags(cmd)
			if err != nil {
				return err
			}
			writeEdges(cmd.OutOrStdout(), g.Edges())

			return nil
		},
	}
}

func newBFSCmd() *cobra.Command {
	var source, dest string

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first search: minimum hop counts from a source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphFromFlags(cmd)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, source, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeTitle(out, fmt.Sprintf("Hop counts from %s", source))
			writeDistances(out, res.Dist)

			return writePathIfRequested(out, g, source, dest)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex key")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "print the path to this vertex")
	cmd.MarkFlagRequired("source")

	return cmd
}

func newDFSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first search: full-graph pre-order visitation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphFromFlags(cmd)
			if err != nil {
				return err
			}
			res, err := dfs.DFS(g, dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeTitle(out, "DFS pre-order")
			writeOrder(out, res.Order)

			return nil
		},
	}
}

func newDijkstraCmd() *cobra.Command {
	var source, dest string

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Dijkstra: weighted shortest distances (non-negative weights)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphFromFlags(cmd)
			if err != nil {
				return err
			}
			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeTitle(out, fmt.Sprintf("Shortest distances from %s", source))
			writeDistances(out, dist)

			return writePathIfRequested(out, g, source, dest)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex key")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "print the path to this vertex")
	cmd.MarkFlagRequired("source")

	return cmd
}

func newBellmanFordCmd() *cobra.Command {
	var source, dest string
	var earlyExit bool

	cmd := &cobra.Command{
		Use:   "bellman-ford",
		Short: "Bellman-Ford: shortest distances tolerating negative edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphFromFlags(cmd)
			if err != nil {
				return err
			}
			opts := []bellmanford.Option{bellmanford.Source(source)}
			if earlyExit {
				opts = append(opts, bellmanford.WithEarlyExit())
			}
			dist, _, err := bellmanford.BellmanFord(g, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeTitle(out, fmt.Sprintf("Shortest distances from %s", source))
			writeDistances(out, dist)

			return writePathIfRequested(out, g, source, dest)
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex key")
	cmd.Flags().StringVarP(&dest, "dest", "d", "", "print the path to this vertex")
	cmd.Flags().BoolVar(&earlyExit, "early-exit", false, "stop passes once distances converge")
	cmd.MarkFlagRequired("source")

	return cmd
}
