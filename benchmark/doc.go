// Package benchmark times the two shortest-path engines on one graph
// and externalizes the measurements as delimited records.
//
// Compare runs Dijkstra and then Bellman–Ford from the same source and
// produces one Record per engine: graph size, elapsed milliseconds, and
// an OK verdict. Dijkstra's verdict only requires a non-empty graph;
// Bellman–Ford's additionally requires that no negative cycle was found
// and that both engines agreed on every distance within a 1e-6
// tolerance (infinities must match exactly) — a cheap cross-check that
// the engines are consistent on the workload.
//
// Records are consumed by an external reporter. WriteCSV emits the fixed
// layout (header `vertices,edges,algorithm,time_ms,ok`, timings with
// three decimals, ok as 0/1); the Sink interface abstracts the reporter
// so other transports can be injected without touching the harness.
package benchmark
