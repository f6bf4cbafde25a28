package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/benchmark"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/graphio"
)

var (
	benchInput  string
	benchSource int
	benchOutput string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time both engines on a stored graph and emit CSV records",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.LoadFile(benchInput)
		if err != nil {
			return err
		}

		records := benchmark.Compare(g, benchSource)
		for _, r := range records {
			if r.OK {
				continue
			}
			switch r.Algorithm {
			case benchmark.AlgorithmDijkstra:
				color.Yellow("%s: not ok (empty graph)", r.Algorithm)
			default:
				color.Yellow("%s: not ok (negative cycle or engine disagreement)", r.Algorithm)
			}
		}

		var sink benchmark.Sink
		if benchOutput == "-" {
			sink = benchmark.CSVSink{W: os.Stdout}
		} else {
			f, err := os.Create(benchOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			sink = benchmark.CSVSink{W: f}
		}

		return sink.Publish(records)
	},
}

func init() {
	benchCmd.Flags().StringVarP(&benchInput, "input", "i", "graph.txt", "graph file")
	benchCmd.Flags().IntVarP(&benchSource, "source", "s", 0, "source vertex")
	benchCmd.Flags().StringVarP(&benchOutput, "output", "o", "-", "CSV output file (- = stdout)")
}
