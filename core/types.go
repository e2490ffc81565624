// Package core defines the central Graph and Vertex types together with the
// traversal state (color, per-source distances, predecessor links) shared by
// every search algorithm in this module.
//
// Unlike a plain adjacency catalog, each Vertex carries its own algorithm
// state in place: a three-color traversal marker, a map of best-known
// distances keyed by source vertex, and a predecessor back reference.
// Distances for different sources coexist; running BFS from "A" and later
// Dijkstra from "B" leaves both dist entries intact on every vertex.
//
// This file declares Vertex, Color, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex key is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNoPath         - predecessor chain does not reach the source.
package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex key is empty.
	ErrEmptyVertexID = errors.New("core: vertex key is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoPath indicates that no predecessor chain links the destination
	// back to the requested source.
	ErrNoPath = errors.New("core: no path exists")
)

// Inf is the distance sentinel for unreachable vertices.
// A vertex keeps Inf in its distance map until some relaxation improves it.
const Inf int64 = math.MaxInt64

// Color is the three-color traversal state of a Vertex.
//
// The closed White/Gray/Black set is the classic invariant used by BFS and
// DFS: an edge from a Gray vertex to a White vertex is a discovery edge, and
// no Black vertex is ever revisited.
type Color uint8

const (
	// White marks an undiscovered vertex.
	White Color = iota

	// Gray marks a discovered vertex whose neighbors are still being scanned.
	Gray

	// Black marks a fully processed vertex.
	Black
)

// String returns the color name for diagnostics.
func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Gray:
		return "GRAY"
	case Black:
		return "BLACK"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. The remaining fields
// (adjacency, dist, color, predecessor) are owned by the Graph and mutated
// in place by the search algorithms; adjacency is read-only during any
// single traversal.
type Vertex struct {
	// ID is the caller-supplied key for this Vertex.
	ID string

	// adjacency maps each out-neighbor to the weight of the edge to it.
	adjacency map[*Vertex]int64

	// dist maps a source vertex to the best known distance from that
	// source to this vertex. Entries for distinct sources accumulate
	// across algorithm runs rather than overwriting each other.
	dist map[*Vertex]int64

	// color is the current traversal state.
	color Color

	// predecessor is the vertex from which this one was most recently
	// reached; it is a back reference for path reconstruction only and
	// never owns the vertex it points to.
	predecessor *Vertex
}

// newVertex allocates a Vertex with empty adjacency and distance maps.
func newVertex(id string) *Vertex {
	return &Vertex{
		ID:        id,
		adjacency: make(map[*Vertex]int64),
		dist:      make(map[*Vertex]int64),
	}
}

// Neighbors returns the out-neighbors of v sorted by ID.
// Sorting keeps traversal order reproducible across runs; Go map iteration
// alone would randomize visit sequences and test goldens.
// Complexity: O(d log d) where d is the out-degree.
func (v *Vertex) Neighbors() []*Vertex {
	out := make([]*Vertex, 0, len(v.adjacency))
	for n := range v.adjacency {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Weight returns the weight of the edge v→n and whether that edge exists.
// Complexity: O(1).
func (v *Vertex) Weight(n *Vertex) (int64, bool) {
	w, ok := v.adjacency[n]

	return w, ok
}

// Degree returns the out-degree of v.
func (v *Vertex) Degree() int { return len(v.adjacency) }

// Color returns the current traversal color of v.
func (v *Vertex) Color() Color { return v.color }

// SetColor sets the traversal color of v.
func (v *Vertex) SetColor(c Color) { v.color = c }

// Predecessor returns the vertex from which v was most recently reached,
// or nil if v has no predecessor (roots and undiscovered vertices).
func (v *Vertex) Predecessor() *Vertex { return v.predecessor }

// SetPredecessor records u as the predecessor of v. Passing nil clears it.
func (v *Vertex) SetPredecessor(u *Vertex) { v.predecessor = u }

// DistFrom returns the best known distance from source to v.
// The second return value is false when no algorithm has been run with that
// source yet; reading the distance earlier is undefined by contract.
func (v *Vertex) DistFrom(source *Vertex) (int64, bool) {
	d, ok := v.dist[source]

	return d, ok
}

// SetDistFrom records d as the best known distance from source to v.
func (v *Vertex) SetDistFrom(source *Vertex, d int64) {
	v.dist[source] = d
}

// String renders the vertex and its neighbor keys for diagnostics.
func (v *Vertex) String() string {
	ids := make([]string, 0, len(v.adjacency))
	for _, n := range v.Neighbors() {
		ids = append(ids, n.ID)
	}

	return fmt.Sprintf("%s connected to: %v", v.ID, ids)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected). Fixed at construction.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory graph data structure owning the vertex set.
//
// A Graph is the sole owner of its vertices; a Vertex never outlives the
// Graph that created it. Vertices and edges are added incrementally before
// any algorithm runs; there is no removal operation, and algorithms assume
// a static topology for the duration of one invocation.
//
// A Graph instance is not safe for concurrent use: every algorithm mutates
// the per-vertex color/dist/predecessor state in place. Callers needing
// parallel queries over one topology must synchronize externally.
type Graph struct {
	// directed is fixed at construction; undirected graphs mirror every
	// edge insertion with the reverse edge at identical weight.
	directed bool

	// vertices maps caller-supplied keys to owned vertices.
	vertices map[string]*Vertex
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected; use WithDirected(true) for digraphs.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool { return g.directed }
