// Package bfs implements breadth-first search over a core.Graph, computing
// minimum hop counts and a shortest-hop predecessor tree from one source.
package bfs

import (
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	source *core.Vertex
	opts   Options
	queue  []*core.Vertex
	res    *Result
}

// BFS runs breadth-first search on g from sourceKey, applying any number
// of functional Options.
//
// Upon completion every reachable vertex holds dist[source] equal to the
// minimum number of edges from the source, and the predecessor links form
// a shortest-hop tree; unreachable vertices keep core.Inf and a nil
// predecessor. Color and predecessor state from a previous run is reset,
// while distance entries for other sources are preserved.
//
// Returns ErrGraphNil or ErrSourceNotFound for invalid input, a context
// error on cancellation, or any error from the OnVisit hook.
// Complexity: O(V + E).
func BFS(g *core.Graph, sourceKey string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source, err := g.GetVertex(sourceKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, sourceKey)
	}

	// Reset colors and predecessors, set dist[source]=Inf everywhere and 0
	// at the source, then seed the frontier: the source turns Gray at
	// discovery like every other vertex.
	g.InitTraversal()
	g.InitSingleSource(source)

	n := g.VertexCount()
	w := &walker{
		graph:  g,
		source: source,
		opts:   o,
		queue:  make([]*core.Vertex, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Dist:   make(map[string]int64, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(source, 0)

	if err := w.loop(); err != nil {
		return nil, err
	}
	w.collect()

	return w.res, nil
}

// enqueue colors v Gray, records its hop distance, fires OnEnqueue, and
// appends it to the FIFO queue.
func (w *walker) enqueue(v *core.Vertex, depth int64) {
	v.SetColor(core.Gray)
	v.SetDistFrom(w.source, depth)
	w.opts.OnEnqueue(v.ID, depth)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		du, _ := u.DistFrom(w.source)

		// Discovery edges: Gray u → White v.
		for _, v := range u.Neighbors() {
			if v.Color() != core.White {
				continue
			}
			v.SetPredecessor(u)
			w.enqueue(v, du+1)
		}

		// All neighbors scanned: u is finalized.
		u.SetColor(core.Black)
		w.res.Order = append(w.res.Order, u.ID)
		if err := w.opts.OnVisit(u.ID, du); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", u.ID, err)
		}
	}

	return nil
}

// collect copies per-vertex state into the result maps: hop distances for
// every vertex (core.Inf for unreachable ones) and parent links for every
// vertex reached through a discovery edge.
func (w *walker) collect() {
	for _, key := range w.graph.Vertices() {
		v, _ := w.graph.GetVertex(key)
		d, _ := v.DistFrom(w.source)
		w.res.Dist[key] = d
		if p := v.Predecessor(); p != nil {
			w.res.Parent[key] = p.ID
		}
	}
}
