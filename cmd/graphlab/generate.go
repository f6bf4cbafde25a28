package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/builder"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/graphio"
)

var (
	genVertices    int
	genProbability float64
	genMinWeight   float64
	genMaxWeight   float64
	genDirected    bool
	genSeed        int64
	genOutput      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random weighted graph and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []builder.Option{
			builder.WithDirected(genDirected),
			builder.WithWeightRange(genMinWeight, genMaxWeight),
		}
		if genSeed != 0 {
			opts = append(opts, builder.WithRand(rand.New(rand.NewSource(genSeed))))
		}

		g, err := builder.Random(genVertices, genProbability, opts...)
		if err != nil {
			return err
		}
		if err := graphio.SaveFile(genOutput, g); err != nil {
			return err
		}

		fmt.Printf("wrote %s: %d vertices, %d edges, directed=%v\n",
			genOutput, g.VertexCount(), g.EdgeCount(), g.Directed())

		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genVertices, "vertices", "n", 10, "number of vertices")
	generateCmd.Flags().Float64VarP(&genProbability, "probability", "p", 0.3, "edge probability in [0,1]")
	generateCmd.Flags().Float64Var(&genMinWeight, "min-weight", 1, "minimum edge weight")
	generateCmd.Flags().Float64Var(&genMaxWeight, "max-weight", 10, "maximum edge weight")
	generateCmd.Flags().BoolVar(&genDirected, "directed", false, "generate a directed graph")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 = random)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "graph.txt", "output file")
}
