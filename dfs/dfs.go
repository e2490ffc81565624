// Package dfs implements depth-first search over the entire vertex set of
// a core.Graph (timestamp-free variant: coloring and predecessor links
// only, no discovery/finish times).
package dfs

import (
	"fmt"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS traverses every vertex of g. It takes no source: all colors and
// predecessors are reset, then vertices are taken in sorted key order and
// each still-White vertex roots a new tree of the depth-first forest.
//
// Every vertex is emitted exactly once in pre-order, both through
// Result.Order and through the OnVisit sink: a vertex turns Gray at
// discovery and Black once all reachable White descendants are explored.
//
// Returns ErrGraphNil for a nil graph, a context error on cancellation,
// or any error from the OnVisit/OnExit hooks.
// Complexity: O(V + E).
func DFS(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	g.InitTraversal()

	vertices := g.Vertices()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:  make([]string, 0, len(vertices)),
			Parent: make(map[string]string, len(vertices)),
		},
	}

	for _, key := range vertices {
		v, _ := g.GetVertex(key)
		if v.Color() != core.White {
			continue
		}
		if err := w.visit(v); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// visit explores u and all White vertices reachable from it, recursively.
// Pre-order emission happens on entry, before descending into neighbors.
func (w *dfsWalker) visit(u *core.Vertex) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	u.SetColor(core.Gray)
	w.res.Order = append(w.res.Order, u.ID)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u.ID); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", u.ID, err)
		}
	}

	for _, v := range u.Neighbors() {
		if v.Color() != core.White {
			continue
		}
		v.SetPredecessor(u)
		w.res.Parent[v.ID] = u.ID
		if err := w.visit(v); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(u.ID); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", u.ID, err)
		}
	}
	u.SetColor(core.Black)

	return nil
}
