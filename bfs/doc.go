// Package bfs provides breadth-first search over a core.Graph, returning
// minimum hop counts, parent links, and the level-order visit sequence.
//
// What
//
//   - Explores vertices in non-decreasing hop distance from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence (vertices in the order they turn Black)
//   - Dist: map from vertex key → hop count from the source
//   - Parent: map from vertex key → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is discovered and enters the queue)
//   - OnVisit   (when a vertex is finalized; may abort with an error)
//   - Mutates per-vertex state in place: color, predecessor, and the
//     dist entry keyed by the source vertex. Distances recorded from other
//     sources are preserved, so results accumulate across runs.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//
// Determinism
//
//	core.Vertex.Neighbors returns neighbors sorted by ID and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue plus the result maps)
//
// Usage
//
//	result, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(id string, depth int64) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if the source vertex does not exist.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - Context errors when the supplied context is canceled.
package bfs
