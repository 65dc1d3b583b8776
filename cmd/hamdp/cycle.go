package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyacartwright/hamilton-dp-bipartite/backtrack"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle FILE",
	Short: "Run the backtracking search standalone",
	Long: `Run the exhaustive backtracking search over the instance in FILE,
independent of the DP, and print the explicit Hamiltonian cycle or an
absence note. Absence is a normal result, not an error.

Examples:
  hamdp cycle instance.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	cycle, found, err := backtrack.FindCycle(g)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("NOT FOUND: the graph has no Hamiltonian cycle.")

		return nil
	}

	fmt.Printf("FOUND: %s\n", cycle)

	return nil
}
