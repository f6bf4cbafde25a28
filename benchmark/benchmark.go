package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/shortestpath"
)

// Algorithm names as they appear in externalized records.
const (
	AlgorithmDijkstra    = "Dijkstra"
	AlgorithmBellmanFord = "Bellman-Ford"
)

// distTolerance bounds the per-vertex disagreement allowed between the
// engines before Bellman–Ford's record is marked not OK.
const distTolerance = 1e-6

// Record is one timed algorithm run, shaped for delimited export.
type Record struct {
	Vertices  int     // graph vertex count
	Edges     int     // logical edge count
	Algorithm string  // AlgorithmDijkstra or AlgorithmBellmanFord
	ElapsedMS float64 // wall-clock run time in milliseconds
	OK        bool    // per-algorithm verdict, see package doc
}

// Sink is the external reporting collaborator records are handed to.
// The harness never renders anything itself.
type Sink interface {
	Publish(records []Record) error
}

// CSVSink publishes records as CSV onto an io.Writer.
type CSVSink struct {
	W io.Writer
}

// Publish implements Sink via WriteCSV.
func (s CSVSink) Publish(records []Record) error {
	return WriteCSV(s.W, records)
}

// Compare times Dijkstra and Bellman–Ford from source on g and returns
// their two records, in that order. A nil graph is treated as empty.
func Compare(g *core.Graph, source int) []Record {
	if g == nil {
		g = mustEmpty()
	}

	t0 := time.Now()
	dres := shortestpath.Dijkstra(g, source)
	dElapsed := time.Since(t0)

	t1 := time.Now()
	bres := shortestpath.BellmanFord(g, source)
	bElapsed := time.Since(t1)

	return []Record{
		{
			Vertices:  g.VertexCount(),
			Edges:     g.EdgeCount(),
			Algorithm: AlgorithmDijkstra,
			ElapsedMS: float64(dElapsed.Microseconds()) / 1e3,
			OK:        len(dres.Dist) > 0,
		},
		{
			Vertices:  g.VertexCount(),
			Edges:     g.EdgeCount(),
			Algorithm: AlgorithmBellmanFord,
			ElapsedMS: float64(bElapsed.Microseconds()) / 1e3,
			OK:        !bres.HasNegativeCycle && distancesAgree(dres.Dist, bres.Dist),
		},
	}
}

// distancesAgree reports whether both distance tables match: same
// reachability everywhere, finite values within distTolerance.
func distancesAgree(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		infA, infB := math.IsInf(a[i], 1), math.IsInf(b[i], 1)
		if infA != infB {
			return false
		}
		if !infA && math.Abs(a[i]-b[i]) > distTolerance {
			return false
		}
	}

	return true
}

// WriteCSV emits the fixed record layout: a header row, then one row per
// record with the timing at three decimal places and ok as 0/1.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"vertices", "edges", "algorithm", "time_ms", "ok"}); err != nil {
		return fmt.Errorf("benchmark: write header: %w", err)
	}
	for _, r := range records {
		ok := "0"
		if r.OK {
			ok = "1"
		}
		row := []string{
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			r.Algorithm,
			strconv.FormatFloat(r.ElapsedMS, 'f', 3, 64),
			ok,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("benchmark: write record: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// mustEmpty builds the zero-vertex stand-in for a nil graph; NewGraph
// cannot fail for n = 0.
func mustEmpty() *core.Graph {
	g, _ := core.NewGraph(0)

	return g
}
