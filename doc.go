// Package graphalgorithmslab is an in-memory laboratory for single-source
// shortest paths on weighted graphs.
//
// What it brings together:
//
//	• Core primitives: a bounded, int-indexed adjacency-list graph,
//	  directed or undirected, with deep-copy semantics
//	• A generic min-priority queue backed by a hash table of priority
//	  buckets plus a sorted distinct-priority index
//	• Shortest paths: Dijkstra (lazy decrease-key) and Bellman–Ford
//	  (edge relaxation with negative-cycle detection)
//	• Path reconstruction from parent tables
//	• Random graph generation, text-format persistence, and a benchmark
//	  harness that cross-checks both engines
//
// Everything is organized under focused subpackages:
//
//	core/         — Graph and Edge types, construction and mutation
//	pqueue/       — Queue interface and the hash-table-backed HashQueue
//	shortestpath/ — Dijkstra, BellmanFord, RestorePath
//	builder/      — random graph generation
//	graphio/      — save/load in the lab's text format
//	benchmark/    — timing records, engine comparison, CSV export
//	cmd/graphlab/ — command-line front-end tying it all together
//
// Quick ASCII example:
//
//	    0──2──▶1
//	    │      │
//	    5      1
//	    ▼      ▼
//	    2◀─────┘
//
//	a directed triangle where the two-hop route 0→1→2 (cost 3) beats the
//	direct arc 0→2 (cost 5).
//
//	go get github.com/IvanPalatovA/GraphAlgorithmsLab
package graphalgorithmslab
