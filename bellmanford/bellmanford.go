// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on a core.Graph.
package bellmanford

import (
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// BellmanFord computes shortest distances from the source vertex
// (Options.Source) to all other vertices of g, tolerating negative edge
// weights. It accepts functional options (Source, WithReturnPath,
// WithEarlyExit).
//
// Returns:
//
//   - dist: map from vertex key to minimum distance (core.Inf if
//     unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == u means the shortest path to v goes through u, and
//     unreachable vertices have no entry.
//   - err:  validation error, or ErrNegativeCycle if a negative-weight
//     cycle reachable from the source is detected — in which case no
//     distances are returned.
//
// The algorithm performs exactly |V|-1 passes over all edges, relaxing
// each unconditionally (WithEarlyExit may stop sooner once a pass changes
// nothing; results are identical). A final scan over the edges detects
// whether any still admits a strict relaxation.
//
// Vertex state is mutated in place: dist[source] entries accumulate next
// to results of runs from other sources, and predecessor links belong to
// this run.
// Complexity: O(V·E).
func BellmanFord(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	source, err := g.GetVertex(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	g.InitSingleSource(source)

	// Topology is static during the run, so one edge snapshot serves all
	// passes.
	edges := g.Edges()

	passes := g.VertexCount() - 1
	for i := 0; i < passes; i++ {
		changed := false
		for _, e := range edges {
			if core.Relax(source, e.From, e.To, e.Weight) {
				changed = true
			}
		}
		if cfg.EarlyExit && !changed {
			break
		}
	}

	// Detection scan: an edge that still relaxes strictly witnesses a
	// negative-weight cycle reachable from the source.
	for _, e := range edges {
		du, _ := e.From.DistFrom(source)
		if du == core.Inf {
			continue
		}
		dv, _ := e.To.DistFrom(source)
		if dv > du+e.Weight {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d",
				ErrNegativeCycle, e.From.ID, e.To.ID, e.Weight)
		}
	}

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
