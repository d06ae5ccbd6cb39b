package debruijn

import "fmt"

// Validate checks Eulerian feasibility of the graph in its current state:
//
//   - degree balance: at most one node with out−in = 1 (path source), at
//     most one with in−out = 1 (path sink), every other node balanced;
//   - connectivity: all edges lie in a single weakly connected component.
//
// Traversal never calls Validate on its own — the default contract is
// best-effort and silently drops unreachable edges. Callers wanting a
// hard guarantee run Validate first (see euler.WithValidation).
func (g *Graph) Validate() error {
	if len(g.order) == 0 {
		return nil
	}

	// 1. Degree balance
	degrees := g.Degrees()
	sources, sinks := 0, 0
	for node, d := range degrees {
		switch diff := d.Out - d.In; {
		case diff == 0:
		case diff == 1:
			sources++
		case diff == -1:
			sinks++
		default:
			return fmt.Errorf("%w: node %q has out−in = %d", ErrNotEulerian, node, diff)
		}
	}
	if sources > 1 || sinks > 1 {
		return fmt.Errorf("%w: %d surplus sources, %d surplus sinks", ErrNotEulerian, sources, sinks)
	}

	// 2. Weak connectivity over nodes touched by at least one edge
	adjUndirected := make(map[string][]string, len(degrees))
	for _, node := range g.order {
		for _, target := range g.adj[node] {
			adjUndirected[node] = append(adjUndirected[node], target)
			adjUndirected[target] = append(adjUndirected[target], node)
		}
	}
	if len(adjUndirected) == 0 {
		return nil
	}

	// Seed BFS from the first insertion-ordered node still carrying edges.
	seed := ""
	for _, node := range g.order {
		if len(adjUndirected[node]) > 0 {
			seed = node
			break
		}
	}

	visited := make(map[string]bool, len(adjUndirected))
	queue := []string{seed}
	visited[seed] = true
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range adjUndirected[node] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	if len(visited) != len(adjUndirected) {
		return fmt.Errorf("%w: %d of %d edge-bearing nodes unreachable",
			ErrNotEulerian, len(adjUndirected)-len(visited), len(adjUndirected))
	}

	return nil
}
