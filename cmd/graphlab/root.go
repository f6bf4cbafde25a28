package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "graphlab",
	Short: "Shortest-path laboratory for weighted graphs",
	Long: `graphlab works with weighted graphs stored in a plain text format
(header "n m directed", then one "u v w" line per edge) and runs the
lab's two single-source shortest-path engines over them:

  - Dijkstra      (non-negative weights; negative edges are skipped)
  - Bellman-Ford  (negative weights allowed; detects negative cycles)`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(generateCmd, shortestCmd, benchCmd, infoCmd)
}
