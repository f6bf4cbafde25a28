package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/graphio"
)

var (
	infoInput string
	infoDump  bool
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a stored graph's header and, optionally, its adjacency",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.LoadFile(infoInput)
		if err != nil {
			return err
		}

		kind := "undirected"
		if g.Directed() {
			kind = "directed"
		}
		fmt.Printf("%s graph: %d vertices, %d edges\n", kind, g.VertexCount(), g.EdgeCount())

		if !infoDump {
			return nil
		}
		for u := 0; u < g.VertexCount(); u++ {
			arcs, err := g.Neighbors(u)
			if err != nil {
				return err
			}
			fmt.Printf("%d:", u)
			for _, e := range arcs {
				fmt.Printf(" (%d, w=%v)", e.To, e.Weight)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "graph.txt", "graph file")
	infoCmd.Flags().BoolVar(&infoDump, "adjacency", false, "dump per-vertex adjacency lists")
}
