// Package dfs provides options and error definitions for depth-first
// search over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is the pre-order sink: it receives each vertex key exactly
	// once, at discovery, in visitation order. Returning an error aborts
	// the traversal.
	OnVisit func(id string) error

	// OnExit is called after all of a vertex's reachable descendants have
	// been explored, just before the vertex turns Black.
	OnExit func(id string) error
}

// DefaultOptions returns Options with context.Background and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the pre-order sink; returning an error from it
// stops the traversal.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook; returning an error from it stops
// the traversal.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// Result holds the outcome of a DFS run:
//   - Order: every vertex key exactly once, in pre-order (discovery)
//     sequence. Deterministic: roots are taken in sorted key order and
//     neighbors in sorted ID order.
//   - Parent: map from vertex key to the vertex it was discovered from;
//     forest roots have no entry.
type Result struct {
	Order  []string
	Parent map[string]string
}
