package euler

import (
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/debruijn"
)

// Path finds an Eulerian path through g using Hierholzer's algorithm and
// returns the ordered node sequence. The graph's adjacency entries are
// consumed destructively; after Path returns, g is (at best) empty.
//
// Start node: the first insertion-ordered node whose out-degree exceeds
// its in-degree; when every node is balanced, the first node inserted.
// An empty graph yields an empty path and a nil error.
//
// Without WithValidation, Path never fails — on non-Eulerian input it
// silently returns a sub-walk (see the package caveat).
func Path(g *debruijn.Graph, opts ...Option) ([]string, error) {
	// 1. Apply options
	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}
	if popts.Validate {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}

	// 2. Pick the start node; empty graph short-circuits
	start, ok := g.StartNode()
	if !ok {
		return nil, nil
	}

	// 3. Hierholzer, iterative: walk forward while the top of the stack
	//    has unconsumed edges, otherwise retire the node to the front of
	//    the path.
	stack := []string{start}
	path := make([]string, 0, g.EdgeCount()+1)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		if next, has := g.PopEdge(node); has {
			stack = append(stack, next)
			continue
		}
		stack = stack[:len(stack)-1]
		path = append(path, node)
	}

	// 4. The path accumulated back-to-front; reverse in place.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// Reconstruct folds an Eulerian node path back into the sequence it
// spells: the first node in full, then the last symbol of every
// subsequent node. Consecutive nodes overlap in all but one symbol by
// construction of the graph, so this concatenation is lossless.
//
// An empty path yields the empty string.
func Reconstruct(path []string) string {
	if len(path) == 0 {
		return ""
	}

	out := make([]byte, 0, len(path[0])+len(path)-1)
	out = append(out, path[0]...)
	for _, node := range path[1:] {
		out = append(out, node[len(node)-1])
	}

	return string(out)
}
