// Package bellmanford defines configuration options and error definitions
// for the Bellman-Ford single-source shortest-path algorithm.
//
// Bellman-Ford tolerates negative edge weights as long as no cycle with
// negative total weight is reachable from the source; such a cycle makes
// shortest distances undefined and is reported as ErrNegativeCycle.
//
// Complexity:
//
//	– Time:  O(V·E)   (|V|-1 relaxation passes over every edge)
//	– Space: O(V)     (distance and predecessor state)
//
// Options:
//
//	– Source:        key of the starting vertex (must be present in the graph).
//	– ReturnPath:    if true, return the predecessor map for path reconstruction.
//	– EarlyExit:     stop passes once a full pass performs no relaxation;
//	                 an optimization only, results are identical either way.
package bellmanford

import "errors"

// Sentinel errors returned by BellmanFord.
var (
	// ErrEmptySource indicates that the provided source vertex key is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex key is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that a negative-weight cycle reachable
	// from the source was detected; no distances are returned in that
	// case, and none of the partial per-vertex state is meaningful.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle found")
)

// Options configures the behavior of the Bellman-Ford algorithm.
type Options struct {
	Source     string // key of the source vertex
	ReturnPath bool   // whether to return the predecessor map
	EarlyExit  bool   // stop once a pass changes nothing
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the key of the starting vertex.
func Source(key string) Option {
	return func(o *Options) { o.Source = key }
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithEarlyExit stops the relaxation passes as soon as one full pass over
// the edges performs no update. Distances have converged at that point, so
// the short-circuit never changes results; the negative-cycle scan still
// runs.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// DefaultOptions returns an Options struct with defaults for the given
// source key: no predecessor map, no early exit.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
