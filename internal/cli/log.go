// Package cli implements the clrsgraphs command-line interface.
//
// The CLI is a thin caller of the library: it loads a graph from a TOML
// description file, runs one of the traversal or shortest-path algorithms,
// and prints the resulting distances, orders, and paths. It is built on
// cobra with verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - edges: enumerate the (from, to, weight) triples of the graph
//   - bfs: hop-count distances from a source vertex
//   - dfs: full-graph depth-first pre-order
//   - dijkstra: weighted shortest distances (non-negative weights)
//   - bellman-ford: weighted shortest distances tolerating negative edges
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
// A distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
