package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/bellmanford"
	"github.com/BogdanFloris/CLRS-Library/core"
)

// ExampleBellmanFord runs Bellman-Ford over a directed graph with one
// negative edge and prints the resulting distance.
func ExampleBellmanFord() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdges([]core.EdgeSpec{
		{From: "s", To: "a", Weight: 4},
		{From: "s", To: "b", Weight: 5},
		{From: "b", To: "a", Weight: -3},
	})

	dist, _, err := bellmanford.BellmanFord(g, bellmanford.Source("s"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("dist to a:", dist["a"])
	// Output:
	// dist to a: 2
}

// ExampleBellmanFord_negativeCycle shows the cycle detection.
func ExampleBellmanFord_negativeCycle() {
	g := core.NewGraph(core.WithDirected(true))
	_ = g.AddEdges([]core.EdgeSpec{
		{From: "x", To: "y", Weight: 1},
		{From: "y", To: "x", Weight: -2},
	})

	_, _, err := bellmanford.BellmanFord(g, bellmanford.Source("x"))
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output:
	// true
}
