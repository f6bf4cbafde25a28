package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
)

// Sentinel errors for text-format parsing.
var (
	// ErrBadHeader indicates a malformed or invalid first line.
	ErrBadHeader = errors.New("graphio: malformed header")

	// ErrBadEdge indicates a malformed or out-of-range edge line.
	ErrBadEdge = errors.New("graphio: malformed edge line")
)

// Save writes g to w in the text format. Undirected graphs emit each
// logical edge once: stored mirror arcs with u > v are skipped.
//
// The header's middle field is the exact number of edge lines that
// follow. For undirected graphs without self-loops it equals
// EdgeCount(); an undirected self-loop is stored as a single arc, so it
// contributes a line the halved EdgeCount() does not count — declaring
// the line count keeps Load and the round-trip guarantee exact.
// Complexity: O(n + m).
func Save(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	directed := 0
	if g.Directed() {
		directed = 1
	}

	// First pass: count the lines the second pass will emit.
	var lines int
	for u := 0; u < g.VertexCount(); u++ {
		arcs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("graphio: neighbors of %d: %w", u, err)
		}
		for _, e := range arcs {
			if !g.Directed() && u > e.To {
				continue
			}
			lines++
		}
	}

	if _, err := fmt.Fprintf(bw, "%d %d %d\n", g.VertexCount(), lines, directed); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}

	for u := 0; u < g.VertexCount(); u++ {
		arcs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("graphio: neighbors of %d: %w", u, err)
		}
		for _, e := range arcs {
			if !g.Directed() && u > e.To {
				continue // mirror arc; the u < v twin already wrote this edge
			}
			// %v keeps the shortest exact decimal form, so weights
			// round-trip bit-for-bit through Load.
			if _, err := fmt.Fprintf(bw, "%d %d %v\n", u, e.To, e.Weight); err != nil {
				return fmt.Errorf("graphio: write edge %d→%d: %w", u, e.To, err)
			}
		}
	}

	return bw.Flush()
}

// Load reads a graph in the text format from r.
//
// Returns ErrBadHeader or ErrBadEdge (wrapped with position context) on
// malformed input; out-of-range endpoints keep core.ErrVertexOutOfRange
// in the chain.
// Complexity: O(n + m).
func Load(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)

	// 1) Header: vertex count, edge count, directed flag.
	var n, m, directedFlag int
	if _, err := fmt.Fscan(br, &n, &m, &directedFlag); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrBadHeader, m)
	}

	g, err := core.NewGraph(n, core.WithDirected(directedFlag != 0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	// 2) Exactly m edge lines; trailing data is ignored, a shortfall or
	//    parse failure is an error.
	for i := 0; i < m; i++ {
		var u, v int
		var w float64
		if _, err := fmt.Fscan(br, &u, &v, &w); err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrBadEdge, i, err)
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("%w %d (%d→%d): %w", ErrBadEdge, i, u, v, err)
		}
	}

	return g, nil
}

// SaveFile writes g to the named file, creating or truncating it.
func SaveFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}

	if err := Save(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// LoadFile reads a graph from the named file.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
