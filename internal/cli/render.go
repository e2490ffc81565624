package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BogdanFloris/CLRS-Library/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// writeTitle prints a bold section header.
func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

// formatDist renders a distance value, using "inf" for the unreachable
// sentinel.
func formatDist(d int64) string {
	if d == core.Inf {
		return "inf"
	}

	return fmt.Sprintf("%d", d)
}

// writeDistances prints one "key: distance" line per vertex, sorted by key.
func writeDistances(w io.Writer, dist map[string]int64) {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, formatDist(dist[k]))
	}
}

// writeOrder prints a visit sequence on a single line.
func writeOrder(w io.Writer, order []string) {
	fmt.Fprintln(w, strings.Join(order, " "))
}

// writeEdges prints one "(from, to) weight" line per edge triple.
func writeEdges(w io.Writer, edges []core.Edge) {
	for _, e := range edges {
		fmt.Fprintf(w, "(%s, %s) %s\n", e.From.ID, e.To.ID, dimStyle.Render(fmt.Sprintf("weight %d", e.Weight)))
	}
}
