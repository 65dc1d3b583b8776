package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ilyacartwright/hamilton-dp-bipartite/backtrack"
	"github.com/ilyacartwright/hamilton-dp-bipartite/dp"
	"github.com/ilyacartwright/hamilton-dp-bipartite/report"
)

var (
	reportPrefix string
	reportNoSVG  bool
)

var reportCmd = &cobra.Command{
	Use:   "report FILE",
	Short: "Run the full pipeline and write a Markdown report",
	Long: `Run the DP, render the interval diagram, run backtracking when the DP
accepts, render the cycle diagram, and write a Markdown report.

Produces <prefix>.md, <prefix>_intervals.svg and, when a cycle is
found, <prefix>_cycle.svg.

Examples:
  hamdp report instance.yaml
  hamdp report instance.yaml --prefix out/run1
  hamdp report instance.yaml --no-svg`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPrefix, "prefix", "hamilton_report", "output file prefix")
	reportCmd.Flags().BoolVar(&reportNoSVG, "no-svg", false, "write only the Markdown report")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	if reportNoSVG {
		solver, err := dp.NewSolver(g)
		if err != nil {
			return err
		}
		stats := solver.Run()
		var cycle backtrack.Cycle
		var found bool
		if stats.Accepted {
			if cycle, found, err = backtrack.FindCycle(g); err != nil {
				return err
			}
		}
		path := reportPrefix + ".md"
		md := report.Markdown(g, stats, cycle, found, report.DefaultOptions())
		if err = os.WriteFile(path, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)

		return nil
	}

	res, err := report.RunFull(g, reportPrefix)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", res.MarkdownPath)
	fmt.Printf("wrote %s\n", res.IntervalsPath)
	if res.CyclePath != "" {
		fmt.Printf("wrote %s\n", res.CyclePath)
	} else {
		fmt.Println("no cycle diagram: cycle not found or DP rejected")
	}

	return nil
}
