// Package dfs provides depth-first search over the entire vertex set of a
// core.Graph, producing a depth-first forest in pre-order.
//
// What
//
//   - Visits every vertex of the graph exactly once, depth before breadth.
//   - Takes no source: vertices are enumerated in sorted key order and each
//     still-White vertex roots a new tree of the forest.
//   - Returns a Result containing:
//   - Order: pre-order (discovery) sequence over the whole graph
//   - Parent: map from vertex key → the vertex it was discovered from;
//     forest roots have no entry
//   - Supports functional hooks at two stages:
//   - OnVisit (pre-order sink, fired at discovery; may abort with an error)
//   - OnExit  (post-order, fired before the vertex turns Black)
//   - Timestamp-free: only the three-color marking and predecessor links
//     are maintained, no discovery/finish times.
//
// Determinism
//
//	Root enumeration follows core.Graph.Vertices (sorted keys) and descent
//	follows core.Vertex.Neighbors (sorted IDs), so the pre-order sequence
//	is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)   (recursion depth plus the result maps)
//
// Usage
//
//	result, err := dfs.DFS(g,
//	    dfs.WithContext(ctx),
//	    dfs.WithOnVisit(func(id string) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil on a nil graph pointer.
//   - Wrapped user-supplied hook errors from OnVisit/OnExit.
//   - Context errors when the supplied context is canceled.
package dfs
