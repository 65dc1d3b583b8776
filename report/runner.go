package report

import (
	"fmt"
	"os"

	"github.com/ilyacartwright/hamilton-dp-bipartite/backtrack"
	"github.com/ilyacartwright/hamilton-dp-bipartite/dp"
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// Result lists what a RunFull pipeline produced.
type Result struct {
	// Stats is the DP run outcome.
	Stats dp.Stats
	// Cycle and CycleFound carry the backtracking result; the search
	// runs only when the DP accepts.
	Cycle      backtrack.Cycle
	CycleFound bool
	// MarkdownPath, IntervalsPath and CyclePath name the files written.
	// CyclePath is empty when no cycle diagram was produced.
	MarkdownPath  string
	IntervalsPath string
	CyclePath     string
}

// RunFull is the end-to-end pipeline:
//
//  1. run the DP and collect statistics;
//  2. render the interval-structure diagram;
//  3. if the DP accepts, run backtracking for an explicit cycle;
//  4. if a cycle is found, render its diagram;
//  5. write the Markdown report.
//
// Files are written as <prefix>.md, <prefix>_intervals.svg and
// optionally <prefix>_cycle.svg.
func RunFull(g *interval.Graph, prefix string) (Result, error) {
	solver, err := dp.NewSolver(g)
	if err != nil {
		return Result{}, err
	}

	res := Result{Stats: solver.Run()}

	res.IntervalsPath = prefix + "_intervals.svg"
	if err = writeFile(res.IntervalsPath, IntervalSVG(g)); err != nil {
		return Result{}, err
	}

	if res.Stats.Accepted {
		res.Cycle, res.CycleFound, err = backtrack.FindCycle(g)
		if err != nil {
			return Result{}, err
		}
		if res.CycleFound {
			res.CyclePath = prefix + "_cycle.svg"
			if err = writeFile(res.CyclePath, CycleSVG(g, res.Cycle)); err != nil {
				return Result{}, err
			}
		}
	}

	opts := DefaultOptions()
	opts.IntervalsImage = res.IntervalsPath
	opts.CycleImage = res.CyclePath

	res.MarkdownPath = prefix + ".md"
	if err = writeFile(res.MarkdownPath, Markdown(g, res.Stats, res.Cycle, res.CycleFound, opts)); err != nil {
		return Result{}, err
	}

	return res, nil
}

// writeFile writes text with context on failure.
func writeFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}
