// Package core: the relaxation primitive shared by the shortest-path
// algorithms (Bellman-Ford and Dijkstra).
package core

// DistanceQueue is the contract the mutable priority queue collaborator
// satisfies for the priority-aware relaxation. AddTask inserts the vertex
// if absent or updates its priority in place if present (decrease-key).
type DistanceQueue interface {
	AddTask(v *Vertex, priority int64)
}

// Relax checks whether reaching v through u improves the best known
// distance from source, and if so updates v's distance and predecessor.
// Reports whether the relaxation succeeded.
//
// A vertex still at Inf cannot improve anything: the update is skipped
// outright, which also keeps Inf + weight from overflowing int64.
// Complexity: O(1).
func Relax(source, u, v *Vertex, weight int64) bool {
	du, ok := u.dist[source]
	if !ok || du == Inf {
		return false
	}
	dv, ok := v.dist[source]
	if !ok {
		dv = Inf
	}
	if dv <= du+weight {
		return false
	}
	v.dist[source] = du + weight
	v.predecessor = u

	return true
}

// RelaxWithUpdate performs Relax and, when the relaxation succeeds,
// notifies q of v's new distance so the priority queue can decrease the
// vertex's key in place. Reports whether the relaxation succeeded.
// Complexity: O(1) plus the queue's update cost.
func RelaxWithUpdate(source, u, v *Vertex, weight int64, q DistanceQueue) bool {
	if !Relax(source, u, v, weight) {
		return false
	}
	q.AddTask(v, v.dist[source])

	return true
}
