// Package core: vertex lifecycle and queries.
//
// This file provides AddVertex/GetVertex/HasVertex/Vertices/VertexCount plus
// the traversal-state initializers shared by the search algorithms
// (InitTraversal, InitSingleSource).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given key into the Graph.
// Returns ErrEmptyVertexID if key is empty.
// If the vertex already exists, this is a no-op (idempotent); the existing
// vertex, its adjacency, and any accumulated distances are preserved.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(key string) error {
	if key == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[key]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[key] = newVertex(key)

	return nil
}

// HasVertex reports whether a vertex with the given key exists.
// Complexity: O(1).
func (g *Graph) HasVertex(key string) bool {
	if key == "" {
		return false
	}
	_, exists := g.vertices[key]

	return exists
}

// GetVertex returns the Vertex stored under key.
// Returns ErrVertexNotFound (wrapped with the key) if key is absent.
// Complexity: O(1).
func (g *Graph) GetVertex(key string) (*Vertex, error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, key)
	}

	return v, nil
}

// Vertices returns all vertex keys sorted ascending.
// The sorted order doubles as the fixed enumeration order used by full
// traversals (DFS visits roots in exactly this sequence).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	keys := make([]string, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// VertexCount returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// InitTraversal resets every vertex to White with no predecessor.
// BFS and DFS call this before exploring so that no state from a previous
// run leaks into the new one. Distance maps are left untouched so that
// per-source entries accumulate across runs.
// Complexity: O(V).
func (g *Graph) InitTraversal() {
	for _, v := range g.vertices {
		v.color = White
		v.predecessor = nil
	}
}

// InitSingleSource prepares a shortest-path run from source: every vertex
// gets dist[source] = Inf and a cleared predecessor, then the source itself
// is set to distance zero.
// Complexity: O(V).
func (g *Graph) InitSingleSource(source *Vertex) {
	for _, v := range g.vertices {
		v.dist[source] = Inf
		v.predecessor = nil
	}
	source.dist[source] = 0
}
