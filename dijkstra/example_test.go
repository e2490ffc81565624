package dijkstra_test

import (
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
	"github.com/BogdanFloris/CLRS-Library/dijkstra"
)

// ExampleDijkstra builds a small directed graph, computes shortest
// distances from "u", and reconstructs one shortest path.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdges([]core.EdgeSpec{
		{From: "u", To: "v", Weight: 10},
		{From: "u", To: "x", Weight: 5},
		{From: "x", To: "v", Weight: 3},
		{From: "v", To: "y", Weight: 1},
		{From: "x", To: "y", Weight: 9},
	})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("u"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("dist to y:", dist["y"])
	path, _ := g.PathTo("u", "y")
	fmt.Println("path:", path)
	// Output:
	// dist to y: 9
	// path: [u x v y]
}
