// Package builder generates random weighted graphs for experiments and
// benchmarks.
//
// Random(n, p) is an Erdős–Rényi-style generator: every admissible pair
// of distinct vertices receives an edge independently with probability p.
// Directed graphs trial every ordered pair (u, v), u != v; undirected
// graphs trial every unordered pair {u, v} with u < v. Weights are drawn
// uniformly from a configurable [min, max] range (swapped if inverted).
//
// Determinism: the trial order is fixed (u ascending, v ascending), so a
// seeded *rand.Rand via WithRand reproduces the same graph every run.
//
// Errors (sentinel):
//
//   - ErrNegativeVertexCount — n < 0.
//   - ErrInvalidProbability  — p outside [0, 1].
package builder
