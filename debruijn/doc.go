// Package debruijn builds the directed multigraph that drives k-mer
// assembly: nodes are (k−1)-length substrings, edges are the k-mers
// themselves, one edge per unit of multiplicity.
//
// What:
//
//   - Graph: insertion-ordered adjacency arena. Each node owns a mutable
//     slice of successor nodes; parallel edges are materialized as
//     repeated entries, not counters. Traversal (package euler) consumes
//     entries destructively, so a Graph is single-use per traversal.
//   - Build: converts a kmer.Multiset into a Graph — for a k-mer of
//     multiplicity m, its (k−1)-prefix gains m contiguous adjacency
//     entries pointing at its (k−1)-suffix.
//   - Degrees / StartNode: in/out degree bookkeeping and the Eulerian
//     start-node rule (first node with out-degree surplus, else the first
//     node inserted).
//   - Validate: opt-in Eulerian-feasibility check (degree balance plus
//     weak connectivity). Nothing calls it implicitly; the default
//     traversal contract is best-effort.
//   - DOT: Graphviz rendering of the current graph state for inspection.
//
// Why:
//   - Sequence reconstruction from k-mers reduces to an Eulerian path in
//     this graph; keeping node order deterministic keeps the whole
//     pipeline reproducible (the start-node fallback is defined by
//     insertion order).
//
// Complexity:
//
//   - Build:    Time O(E), Memory O(V + E), E = total k-mer multiplicity.
//   - Degrees:  Time O(V + E).
//   - Validate: Time O(V + E).
//
// Errors:
//
//   - ErrNotEulerian — Validate found unbalanced degrees beyond one
//     source/sink pair, or more than one weakly connected component.
package debruijn
