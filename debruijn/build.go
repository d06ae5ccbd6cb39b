package debruijn

import "github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"

// Build converts a k-mer multiset into its de Bruijn graph.
//
// For each k-mer, prefix = all but the last symbol and suffix = all but
// the first; the suffix is appended to the prefix's adjacency slice once
// per unit of multiplicity, contiguously. K-mers are processed in the
// multiset's first-occurrence order, which fixes the graph's node
// insertion order and therefore the start-node fallback downstream.
//
// No Eulerian feasibility check happens here; see (*Graph).Validate.
func Build(ms *kmer.Multiset) *Graph {
	g := NewGraph()
	for _, key := range ms.Keys() {
		prefix, suffix := key[:len(key)-1], key[1:]
		for i := ms.Count(key); i > 0; i-- {
			g.AddEdge(prefix, suffix)
		}
	}

	return g
}

// Degrees computes the in/out degree of every node currently reachable
// through an adjacency entry, keyed by node value. Nodes appearing only
// as targets are included with Out = 0.
func (g *Graph) Degrees() map[string]Degree {
	degrees := make(map[string]Degree, len(g.order))
	for _, node := range g.order {
		d := degrees[node]
		d.Out = len(g.adj[node])
		degrees[node] = d
		for _, target := range g.adj[node] {
			td := degrees[target]
			td.In++
			degrees[target] = td
		}
	}

	return degrees
}

// StartNode selects the node an Eulerian traversal must start from: the
// first node (in insertion order) whose out-degree exceeds its in-degree.
// When every node is balanced — the fully circular case — it falls back
// to the first node inserted. The second result is false only for an
// empty graph.
func (g *Graph) StartNode() (string, bool) {
	if len(g.order) == 0 {
		return "", false
	}
	degrees := g.Degrees()
	for _, node := range g.order {
		if d := degrees[node]; d.Out > d.In {
			return node, true
		}
	}

	return g.order[0], true
}
