// Package core: edge insertion and enumeration.
//
// Edges live inside each vertex's adjacency map (neighbor → weight), so a
// repeated AddEdge for the same pair overwrites the previous weight
// (last-write-wins, map semantics). Undirected graphs mirror every
// insertion with the reverse edge at the same weight.
package core

// Edge is one directed adjacency entry, produced by Edges.
// For undirected graphs both directions appear as separate entries.
type Edge struct {
	// From is the tail vertex of this adjacency entry.
	From *Vertex

	// To is the head vertex.
	To *Vertex

	// Weight is the edge weight; zero when none was specified.
	Weight int64
}

// EdgeSpec names an edge by vertex keys for batch insertion via AddEdges.
type EdgeSpec struct {
	From   string
	To     string
	Weight int64
}

// AddEdge inserts the edge from→to with the given weight, creating either
// endpoint if absent. On undirected graphs the mirror edge to→from is
// inserted with the same weight. Self-loops are permitted; a later call for
// the same pair overwrites the stored weight.
// Returns ErrEmptyVertexID when either key is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// Ensure both endpoints exist (idempotent).
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	u := g.vertices[from]
	v := g.vertices[to]
	u.adjacency[v] = weight
	if !g.directed {
		v.adjacency[u] = weight
	}

	return nil
}

// AddEdges inserts every edge in specs via AddEdge, stopping at the first
// failure.
// Complexity: O(len(specs)) amortized.
func (g *Graph) AddEdges(specs []EdgeSpec) error {
	for _, s := range specs {
		if err := g.AddEdge(s.From, s.To, s.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Edges returns one (from, to, weight) triple per directed adjacency entry,
// sorted by (From.ID, To.ID) for reproducible enumeration. Undirected
// graphs naturally yield both directions as separate triples.
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, key := range g.Vertices() {
		u := g.vertices[key]
		for _, v := range u.Neighbors() {
			out = append(out, Edge{From: u, To: v, Weight: u.adjacency[v]})
		}
	}

	return out
}

// EdgeCount returns the number of directed adjacency entries.
// Each undirected edge counts twice (once per direction).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	var n int
	for _, v := range g.vertices {
		n += len(v.adjacency)
	}

	return n
}

// Connected reports whether k2 is a direct out-neighbor of k1.
// Absent keys yield false.
// Complexity: O(1).
func (g *Graph) Connected(k1, k2 string) bool {
	u, ok := g.vertices[k1]
	if !ok {
		return false
	}
	v, ok := g.vertices[k2]
	if !ok {
		return false
	}
	_, adjacent := u.adjacency[v]

	return adjacent
}
