// Package bfs provides tunable options and error definitions for
// breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source key is absent.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex turns Gray and enters the queue.
	// Receives the vertex key and its hop distance from the source.
	OnEnqueue func(id string, depth int64)

	// OnVisit is called when a vertex turns Black, after its neighbors
	// have been scanned. If it returns an error, BFS aborts and
	// propagates that error.
	OnVisit func(id string, depth int64) error
}

// DefaultOptions returns Options with context.Background and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int64) {},
		OnVisit:   func(string, int64) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a vertex is discovered.
func WithOnEnqueue(fn func(id string, depth int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a vertex is finalized;
// returning an error stops the search.
func WithOnVisit(fn func(id string, depth int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Order: vertices finalized (turned Black), in that sequence.
//   - Dist: map from vertex key to hop count from the source;
//     unreachable vertices keep core.Inf.
//   - Parent: map from vertex key to its predecessor in the BFS tree;
//     the source and unreachable vertices have no entry.
type Result struct {
	Order  []string
	Dist   map[string]int64
	Parent map[string]string
}

// PathTo reconstructs the path from the source to dest out of the Parent
// map, in source→dest order. Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if d, ok := r.Dist[dest]; !ok || d == core.Inf {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
