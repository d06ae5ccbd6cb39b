// Package debruijn defines the Graph arena type and its sentinel errors.
package debruijn

import "errors"

var (
	// ErrNotEulerian indicates the graph cannot carry an Eulerian path:
	// degree imbalance beyond a single source/sink pair, or edges spread
	// over more than one weakly connected component.
	ErrNotEulerian = errors.New("debruijn: graph is not Eulerian")
)

// Degree holds the in/out degree of one node.
type Degree struct {
	// In counts appearances of the node as an edge target.
	In int

	// Out counts the node's outgoing adjacency entries.
	Out int
}

// Graph is a directed multigraph stored as an insertion-ordered adjacency
// arena. Every unit of edge multiplicity is one slice entry; PopEdge
// consumes entries from the end of a node's slice.
//
// The zero value is not usable; construct with NewGraph or Build.
type Graph struct {
	adj   map[string][]string
	order []string
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// AddEdge appends one directed edge from → to. The from node is
// registered in insertion order on first sight. Target-only nodes do not
// join the order until they gain an outgoing edge of their own.
func (g *Graph) AddEdge(from, to string) {
	if _, seen := g.adj[from]; !seen {
		g.order = append(g.order, from)
	}
	g.adj[from] = append(g.adj[from], to)
}

// Nodes returns the nodes holding adjacency slices, in insertion order.
// The returned slice is a copy and safe to retain.
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.order))
	copy(nodes, g.order)

	return nodes
}

// Adjacency returns the current successor entries of node (nil if the
// node has none left). The returned slice is a copy.
func (g *Graph) Adjacency(node string) []string {
	entries, ok := g.adj[node]
	if !ok || len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	copy(out, entries)

	return out
}

// PopEdge removes and returns the most recently appended unconsumed edge
// of node. The second result reports whether an edge remained.
func (g *Graph) PopEdge(node string) (string, bool) {
	entries := g.adj[node]
	if len(entries) == 0 {
		return "", false
	}
	last := entries[len(entries)-1]
	g.adj[node] = entries[:len(entries)-1]

	return last, true
}

// OutDegree returns the number of unconsumed outgoing edges of node.
func (g *Graph) OutDegree(node string) int { return len(g.adj[node]) }

// EdgeCount returns the total number of unconsumed edges in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, entries := range g.adj {
		total += len(entries)
	}

	return total
}

// Empty reports whether the graph holds no nodes at all.
func (g *Graph) Empty() bool { return len(g.order) == 0 }
