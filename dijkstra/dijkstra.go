// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative edge weights, using a mutable min-priority
// queue with true decrease-key.
package dijkstra

import (
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
	"github.com/BogdanFloris/CLRS-Library/pqueue"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all other vertices in g.
//
// Returns:
//
//   - dist: map from vertex key to minimum distance (core.Inf if
//     unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//   - err:  error if the source is empty, the graph is nil, or the source
//     vertex is absent.
//
// Precondition: every edge weight is ≥ 0. This is not validated at
// runtime; negative weights silently produce incorrect results.
//
// The algorithm loads every vertex into the priority queue keyed by its
// current distance, then repeatedly extracts the minimum and relaxes its
// outgoing edges through core.RelaxWithUpdate, which pushes each improved
// distance back into the queue as an in-place key decrease. Because the
// queue updates priorities rather than inserting duplicates, each vertex
// has exactly one live entry and is extracted exactly once.
//
// Vertex state is mutated in place: dist[source] entries accumulate next
// to results of runs from other sources, and predecessor links belong to
// this run.
// Complexity: O((V + E) log V).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	// 4) Validate Source exists in the graph.
	source, err := g.GetVertex(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) dist[source] = Inf everywhere, 0 at the source.
	g.InitSingleSource(source)

	// 6) Load every vertex into the queue keyed by its current distance
	//    (0 for the source, Inf for the rest).
	pq := pqueue.New[*core.Vertex]()
	for _, key := range g.Vertices() {
		v, _ := g.GetVertex(key)
		d, _ := v.DistFrom(source)
		pq.AddTask(v, d)
	}

	// 7) Main loop: extract the minimum, relax its outgoing edges. A
	//    successful relaxation decreases the neighbor's key in place.
	for !pq.Empty() {
		u, perr := pq.PopTask()
		if perr != nil {
			return nil, nil, perr // unreachable: loop guards on Empty
		}
		for _, v := range u.Neighbors() {
			w, _ := u.Weight(v)
			core.RelaxWithUpdate(source, u, v, w, pq)
		}
	}

	// 8) Copy per-vertex state into the result maps.
	dist := make(map[string]int64, g.VertexCount())
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, g.VertexCount())
	}
	for _, key := range g.Vertices() {
		v, _ := g.GetVertex(key)
		d, _ := v.DistFrom(source)
		dist[key] = d
		if prev != nil {
			if p := v.Predecessor(); p != nil {
				prev[key] = p.ID
			}
		}
	}

	return dist, prev, nil
}
