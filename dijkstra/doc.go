// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - Uses a mutable min-priority queue (pqueue.MutablePriorityQueue) with
//     true decrease-key: every vertex is loaded once, keyed by its current
//     distance, and a successful relaxation lowers its key in place instead
//     of inserting a duplicate. Each vertex is therefore extracted exactly
//     once.
//   - Optional path reconstruction through the predecessor map
//     (WithReturnPath) or through core.Graph.PathTo after the run, since
//     predecessor links are written onto the vertices themselves.
//
// Precondition:
//
//	Every edge weight must be ≥ 0. This is documented, not validated: a
//	negative weight silently breaks the greedy extraction order. Use
//	bellmanford for graphs with negative edges.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) — V extractions, at most E in-place key
//     decreases, each costing O(log V).
//   - Space: O(V) — one live queue entry per vertex plus the result maps.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the Source option is empty.
//   - ErrNilGraph:       a nil *core.Graph was passed.
//   - ErrVertexNotFound: the source vertex does not exist in the graph.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist: map[v] = minimal distance from Source to v, or core.Inf if
//	    unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path;
//	    nil unless WithReturnPath is set.
//
// Thread safety:
//
//   - Not safe for concurrent use on one *core.Graph: per-vertex color,
//     distance, and predecessor state is mutated in place.
package dijkstra
