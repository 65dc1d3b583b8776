// Package main is the entry point for the hamdp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hamdp",
	Short: "hamdp - Hamiltonian cycles in 2-interval bipartite graphs",
	Long: `hamdp decides whether a bipartite graph with a 2-interval structure
contains a Hamiltonian cycle, using a polynomial dynamic program, and
cross-checks positive answers with an exhaustive backtracking search.

Instances are YAML files describing n and the interval pair of every
Y-vertex; see the instance package documentation for the format.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("hamdp version {{.Version}}\n")
}
