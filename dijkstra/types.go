// Package dijkstra defines configuration options and error definitions for
// Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices. All edge weights must be non-negative;
// this is a documented precondition, not a runtime check — negative
// weights silently produce incorrect results (use bellmanford for those).
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each vertex is extracted from the priority queue exactly once (V extracts).
//	   • Each successful relaxation decreases a key in place (up to E updates).
//	   • Each heap operation costs O(log V); the update-in-place contract keeps
//	     at most one live queue entry per vertex, so the heap never exceeds V.
//	– Space: O(V)
//
// Options:
//
//	– Source:     key of the starting vertex (must be non-empty and present).
//	– ReturnPath: if true, return the predecessor map for path reconstruction.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source key is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source vertex does not exist in the graph.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex key is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex key is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does
	// not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex key (must be non-empty and present).
// ReturnPath – if true, return the predecessor map; otherwise prev is nil.
type Options struct {
	Source     string
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the key of the starting vertex.
// Must be called to specify where the search begins.
func Source(key string) Option {
	return func(o *Options) { o.Source = key }
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns an Options struct initialized with defaults for
// the given source key: predecessor map disabled.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
