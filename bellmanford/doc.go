// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm on a core.Graph.
//
// Overview:
//
//   - Computes minimum-cost paths from a single source vertex, tolerating
//     negative edge weights — the capability Dijkstra's greedy extraction
//     cannot offer.
//   - Performs exactly |V|-1 relaxation passes over the full edge list,
//     then one detection scan: an edge that still admits a strict
//     relaxation witnesses a negative-weight cycle reachable from the
//     source, reported as ErrNegativeCycle with no distances returned.
//   - WithEarlyExit stops the passes once a full pass changes nothing;
//     distances have converged at that point, so results are identical.
//
// Performance and complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E) — the edge snapshot plus the result maps.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the Source option is empty.
//   - ErrNilGraph:       a nil *core.Graph was passed.
//   - ErrVertexNotFound: the source vertex does not exist in the graph.
//   - ErrNegativeCycle:  a negative-weight cycle is reachable from the
//     source; shortest distances are undefined.
//
// API reference:
//
//	func BellmanFord(
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
//   - Not safe for concurrent use on one *core.Graph: per-vertex distance
//     and predecessor state is mutated in place.
package bellmanford
