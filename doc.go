// Package clrs is an in-memory weighted graph library built around the
// classic textbook traversal and shortest-path algorithms.
//
// What it provides:
//
//	• Core primitives: build directed or undirected weighted graphs,
//	  query vertices, edges, and adjacency
//	• Traversals: BFS (hop-count distances) and DFS (full-graph pre-order)
//	• Shortest paths: Dijkstra (non-negative weights) and Bellman-Ford
//	  (negative weights, negative-cycle detection)
//	• Path reconstruction over predecessor chains
//
// Everything is organized under focused subpackages:
//
//	core/        — Graph and Vertex types, traversal state, relaxation, paths
//	bfs/         — breadth-first search
//	dfs/         — depth-first search
//	dijkstra/    — Dijkstra's algorithm
//	bellmanford/ — the Bellman-Ford algorithm
//	pqueue/      — the mutable min-priority queue (decrease-key) backing Dijkstra
//
// Each algorithm mutates per-vertex state (color, per-source distance,
// predecessor) in place and also returns plain result maps; distances for
// distinct sources accumulate on the vertices across runs.
//
// A demonstration CLI lives under cmd/clrsgraphs: it loads a graph from a
// TOML description file and runs any of the four algorithms against it.
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("A", "B", 5)
//	g.AddEdge("B", "C", 4)
//	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["C"]) // 9
package clrs
