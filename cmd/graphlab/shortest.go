package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/graphio"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/shortestpath"
)

var (
	spInput  string
	spSource int
	spTarget int
	spAlgo   string
)

var shortestCmd = &cobra.Command{
	Use:   "shortest",
	Short: "Compute single-source shortest paths on a stored graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.LoadFile(spInput)
		if err != nil {
			return err
		}

		var res shortestpath.Result
		switch strings.ToLower(spAlgo) {
		case "dijkstra":
			res = shortestpath.Dijkstra(g, spSource)
		case "bellman-ford", "bellmanford":
			res = shortestpath.BellmanFord(g, spSource)
		default:
			return fmt.Errorf("unknown algorithm %q (want dijkstra or bellman-ford)", spAlgo)
		}

		if res.HasNegativeCycle {
			color.Red("negative cycle reachable from %d: distances below are not trustworthy", spSource)
		}

		fmt.Println("vertex : distance")
		for v, d := range res.Dist {
			if math.IsInf(d, 1) {
				fmt.Printf("%6d : INF\n", v)
				continue
			}
			fmt.Printf("%6d : %v\n", v, d)
		}

		if spTarget >= 0 {
			path := shortestpath.RestorePath(spSource, spTarget, res.Parent)
			if len(path) == 0 {
				color.Yellow("no path %d -> %d", spSource, spTarget)
				return nil
			}
			parts := make([]string, len(path))
			for i, v := range path {
				parts[i] = fmt.Sprint(v)
			}
			fmt.Printf("path %d -> %d: %s\n", spSource, spTarget, strings.Join(parts, " -> "))
		}

		return nil
	},
}

func init() {
	shortestCmd.Flags().StringVarP(&spInput, "input", "i", "graph.txt", "graph file")
	shortestCmd.Flags().IntVarP(&spSource, "source", "s", 0, "source vertex")
	shortestCmd.Flags().IntVarP(&spTarget, "target", "t", -1, "target vertex to reconstruct (-1 = none)")
	shortestCmd.Flags().StringVarP(&spAlgo, "algorithm", "a", "dijkstra", "dijkstra or bellman-ford")
}
