package debruijn

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// DOT renders the graph's current state as a Graphviz digraph. Parallel
// edges appear once per unconsumed adjacency entry, so a rendering taken
// after a traversal shows only the leftover edges.
//
// Node values are emitted as quoted labels; name becomes the digraph
// name. The output is suitable for `dot -Tsvg`.
func (g *Graph) DOT(name string) (string, error) {
	viz := gographviz.NewGraph()
	if err := viz.SetName(name); err != nil {
		return "", fmt.Errorf("debruijn: dot name %q: %w", name, err)
	}
	if err := viz.SetDir(true); err != nil {
		return "", fmt.Errorf("debruijn: dot: %w", err)
	}
	if err := viz.SetStrict(false); err != nil {
		return "", fmt.Errorf("debruijn: dot: %w", err)
	}

	seen := make(map[string]bool)
	addNode := func(node string) error {
		if seen[node] {
			return nil
		}
		seen[node] = true
		if err := viz.AddNode(name, strconv.Quote(node), map[string]string{"shape": "box"}); err != nil {
			return fmt.Errorf("debruijn: dot node %q: %w", node, err)
		}

		return nil
	}

	for _, node := range g.order {
		if err := addNode(node); err != nil {
			return "", err
		}
		for _, target := range g.adj[node] {
			if err := addNode(target); err != nil {
				return "", err
			}
			if err := viz.AddEdge(strconv.Quote(node), strconv.Quote(target), true, nil); err != nil {
				return "", fmt.Errorf("debruijn: dot edge %s->%s: %w", node, target, err)
			}
		}
	}

	return viz.String(), nil
}
