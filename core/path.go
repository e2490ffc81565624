package core

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// PathTo reconstructs the path from sourceKey to destKey by walking
// predecessor links backward from the destination, returning vertex keys in
// source→destination order. Callers must have run an algorithm from that
// source first so the predecessor chains are populated.
//
// Returns ErrVertexNotFound when either key is absent and ErrNoPath when
// the destination's predecessor chain terminates without reaching the
// source. The path from a source to itself is the single-element path.
// Complexity: O(L) where L is the path length.
func (g *Graph) PathTo(sourceKey, destKey string) ([]string, error) {
	source, err := g.GetVertex(sourceKey)
	if err != nil {
		return nil, err
	}
	dest, err := g.GetVertex(destKey)
	if err != nil {
		return nil, err
	}

	// Walk backward, collecting keys in reverse.
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur.ID)
		if cur == source {
			break
		}
		if cur.predecessor == nil {
			return nil, fmt.Errorf("%w: from %q to %q", ErrNoPath, sourceKey, destKey)
		}
		cur = cur.predecessor
	}
	// Reverse to get source → destination.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// WritePath renders the path from sourceKey to destKey to w as
// space-separated vertex keys on one line. When no path exists it writes a
// "no path" notice instead of a partial path and reports success; missing
// vertices surface as ErrVertexNotFound.
func (g *Graph) WritePath(w io.Writer, sourceKey, destKey string) error {
	path, err := g.PathTo(sourceKey, destKey)
	switch {
	case err == nil:
		_, werr := fmt.Fprintln(w, strings.Join(path, " "))

		return werr
	case errors.Is(err, ErrNoPath):
		_, werr := fmt.Fprintf(w, "No path from %s to %s exists!\n", sourceKey, destKey)

		return werr
	default:
		return err
	}
}
