// Package euler walks a de Bruijn graph along an Eulerian path and folds
// the resulting node sequence back into a single string.
//
// What:
//
//   - Path: iterative Hierholzer traversal over a debruijn.Graph. The
//     graph is consumed destructively — every adjacency entry is popped
//     exactly once — so a Graph feeds at most one Path call.
//   - Reconstruct: turns the node path ((k−1)-mers overlapping in k−2
//     symbols) into the assembled sequence.
//
// Why:
//   - An Eulerian path through the de Bruijn graph spells the source
//     sequence: each edge is one k-mer observation, and consuming every
//     edge exactly once reads every observation exactly once.
//
// Caveat:
//
//	Path does not verify that the walk covered every edge. On input that
//	is not Eulerian (imbalance beyond one source/sink pair, disconnected
//	components) it returns a sub-walk and drops the leftover edges
//	without error. Opt into a hard guarantee with WithValidation, which
//	runs debruijn's feasibility check before touching the graph.
//
// Complexity:
//
//   - Path:        Time O(V + E), Memory O(E) for the stack and output.
//   - Reconstruct: Time O(P), P = path length.
//
// Errors:
//
//   - debruijn.ErrNotEulerian — only with WithValidation enabled.
package euler
