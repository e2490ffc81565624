package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// errBadGraphFile wraps every malformed-description failure from loadGraph.
var errBadGraphFile = errors.New("cli: invalid graph description")

// graphFile is the TOML description of a graph:
//
//	directed = true
//	vertices = ["isolated"]        # optional, for vertices without edges
//
//	[[edge]]
//	from = "0"
//	to = "1"
//	weight = 5                     # optional, defaults to 0
type graphFile struct {
	Directed bool        `toml:"directed"`
	Vertices []string    `toml:"vertices"`
	Edges    []edgeEntry `toml:"edge"`
}

type edgeEntry struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Weight int64  `toml:"weight"`
}

// loadGraph reads a TOML graph description from path and builds the graph.
func loadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file graphFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadGraphFile, err)
	}

	return buildGraph(&file)
}

// buildGraph materializes the parsed description as a core.Graph.
func buildGraph(file *graphFile) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(file.Directed))
	for _, key := range file.Vertices {
		if err := g.AddVertex(key); err != nil {
			return nil, fmt.Errorf("%w: vertex: %v", errBadGraphFile, err)
		}
	}
	for i, e := range file.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d is missing an endpoint", errBadGraphFile, i+1)
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %v", errBadGraphFile, i+1, err)
		}
	}

	return g, nil
}
