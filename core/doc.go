// Package core provides the graph representation every algorithm in this
// module operates on: a Graph owning a set of Vertices, each carrying its
// weighted adjacency plus the mutable traversal state (three-color marker,
// per-source distance map, predecessor back reference).
//
// What
//
//   - Build graphs incrementally: AddVertex, AddEdge, AddEdges.
//   - Query them: GetVertex, Vertices, Edges, Connected, VertexCount.
//   - Shared algorithm primitives: InitTraversal, InitSingleSource, Relax,
//     RelaxWithUpdate (the priority-aware variant feeding a DistanceQueue).
//   - Recover shortest paths: PathTo walks predecessor chains backward,
//     WritePath renders them.
//
// State model
//
//	Each Vertex keeps a dist map keyed by *source* vertex, so results of
//	algorithm runs from distinct sources accumulate instead of clobbering
//	one scalar. dist[source] is defined only after an algorithm has been
//	run with that source; reading it earlier is undefined by contract.
//	Color and predecessor belong to the most recent run and are reset by
//	the initializers.
//
// Concurrency
//
//	Single-threaded by design. Algorithms mutate color/dist/predecessor in
//	place on the calling goroutine; a Graph must not be shared across
//	goroutines without external synchronization.
//
// Determinism
//
//	Vertices() sorts keys and Vertex.Neighbors() sorts by neighbor ID, so
//	every enumeration (and therefore every traversal order) is
//	reproducible.
package core
