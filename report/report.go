// Package report renders the results of a solver run: a Markdown
// summary and SVG diagrams of the interval structure and of a found
// cycle. Pure data in, text out; only the file-writing helpers touch
// the file system.
package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ilyacartwright/hamilton-dp-bipartite/backtrack"
	"github.com/ilyacartwright/hamilton-dp-bipartite/dp"
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// Options controls report rendering.
type Options struct {
	// Title heads the Markdown document.
	Title string
	// IntervalsImage, if non-empty and present on disk, is embedded in
	// the interval-structure section.
	IntervalsImage string
	// CycleImage, if non-empty and present on disk, is embedded in the
	// cycle section.
	CycleImage string
}

// DefaultOptions returns the stock report configuration.
func DefaultOptions() Options {
	return Options{Title: "Hamiltonian cycle in a 2-interval bipartite graph"}
}

// Markdown renders the full run summary: graph size, DP verdict and
// statistics tables, the interval-structure section, and either the
// found cycle in arrow form or an explicit not-found note. found
// reports whether cycle is meaningful; an empty cycle with found=true
// is the valid n=0 result.
func Markdown(g *interval.Graph, stats dp.Stats, cycle backtrack.Cycle, found bool, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.Title)

	b.WriteString("## 1. Graph\n\n")
	fmt.Fprintf(&b, "- Vertices per side: `n = %d`\n", g.N())
	fmt.Fprintf(&b, "- Edges: `m = %d`\n\n", g.EdgeCount())

	b.WriteString("## 2. DP results\n\n")
	fmt.Fprintf(&b, "- Accepted: `%v` (Hamiltonian cycle exists according to the DP)\n", stats.Accepted)
	fmt.Fprintf(&b, "- Reachable DP states: `%d`\n", stats.TotalStates)
	fmt.Fprintf(&b, "- Largest layer: `%d` states\n\n", stats.MaxPerLayer)

	b.WriteString("### 2.1. States per layer\n\n")
	b.WriteString("| k | states |\n|---|--------|\n")
	for _, k := range sortedLayerKeys(stats.StatesPerLayer) {
		fmt.Fprintf(&b, "| %d | %d |\n", k, stats.StatesPerLayer[k])
	}
	b.WriteString("\n")

	b.WriteString("### 2.2. Transition usage (INIT, T1–T5)\n\n")
	b.WriteString("| rule | applications |\n|------|--------------|\n")
	for _, t := range sortedTransitionKeys(stats.PerTransition) {
		fmt.Fprintf(&b, "| %s | %d |\n", t, stats.PerTransition[t])
	}
	b.WriteString("\n")

	b.WriteString("## 3. Interval structure\n\n")
	if fileExists(opts.IntervalsImage) {
		fmt.Fprintf(&b, "![Interval structure](%s)\n\n", opts.IntervalsImage)
	} else {
		b.WriteString("_No interval diagram available._\n\n")
	}

	b.WriteString("## 4. Hamiltonian cycle\n\n")
	if !found {
		b.WriteString("The backtracking search found **no** Hamiltonian cycle.\n")

		return b.String()
	}

	b.WriteString("The backtracking search **found** a Hamiltonian cycle.\n\n")
	b.WriteString("### 4.1. Cycle vertex sequence\n\n")
	fmt.Fprintf(&b, "`%s`\n", cycle)
	if fileExists(opts.CycleImage) {
		b.WriteString("\n### 4.2. Cycle diagram\n\n")
		fmt.Fprintf(&b, "![Hamiltonian cycle](%s)\n", opts.CycleImage)
	}

	return b.String()
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)

	return err == nil
}

func sortedLayerKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func sortedTransitionKeys(m map[dp.Transition]int) []dp.Transition {
	keys := make([]dp.Transition, 0, len(m))
	for t := range m {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })

	return keys
}
