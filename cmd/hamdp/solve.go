package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ilyacartwright/hamilton-dp-bipartite/dp"
	"github.com/ilyacartwright/hamilton-dp-bipartite/instance"
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Run the DP and print its verdict and statistics",
	Long: `Run the polynomial dynamic program over the instance in FILE and
print the acceptance verdict together with the state-space statistics
(total states, states per layer, transition-rule usage).

Examples:
  hamdp solve instance.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args[0])
	if err != nil {
		return err
	}

	solver, err := dp.NewSolver(g)
	if err != nil {
		return err
	}
	stats := solver.Run()

	verdict := "REJECTED (no Hamiltonian cycle per DP)"
	if stats.Accepted {
		verdict = "ACCEPTED (Hamiltonian cycle exists per DP)"
	}
	fmt.Printf("%s\n", verdict)
	fmt.Printf("n=%d m=%d states=%d maxLayer=%d\n\n", g.N(), g.EdgeCount(), stats.TotalStates, stats.MaxPerLayer)

	fmt.Println("states per layer:")
	layers := make([]int, 0, len(stats.StatesPerLayer))
	for k := range stats.StatesPerLayer {
		layers = append(layers, k)
	}
	sort.Ints(layers)
	for _, k := range layers {
		fmt.Printf("  k=%-3d %d\n", k, stats.StatesPerLayer[k])
	}

	fmt.Println("transition usage:")
	rules := make([]dp.Transition, 0, len(stats.PerTransition))
	for t := range stats.PerTransition {
		rules = append(rules, t)
	}
	sort.Slice(rules, func(a, b int) bool { return rules[a] < rules[b] })
	for _, t := range rules {
		fmt.Printf("  %-5s %d\n", t, stats.PerTransition[t])
	}

	return nil
}

// loadGraph reads an instance file and builds its validated graph.
func loadGraph(path string) (*interval.Graph, error) {
	ins, err := instance.Load(path)
	if err != nil {
		return nil, err
	}

	return ins.Graph()
}
