// Package traverse provides the traversal engine for a core.Graph: a
// single selector-driven frontier walk that yields every reachable node
// exactly once, with depth-first and breadth-first orders as built-in
// selector instances, plus interactive walks for caller-driven stepping.
//
// # Traversal
//
// Traverse keeps two pieces of state: an ordered frontier of discovered
// nodes and a visited set. Each round the Selector removes exactly one
// frontier node; that node is yielded, marked visited, and its unseen
// out-neighbors (both sides of undirected edges) join the frontier. The
// engine asserts the one-removal contract and fails with
// ErrSelectorContract when a selector violates it.
//
//	order, err := traverse.DFS(g, "A")                 // stack order
//	order, err := traverse.BFS(g, "A")                 // layer order
//	order, err := traverse.Traverse(g, "A", mySelector) // any policy
//
// A custom selector sees the live frontier, so heuristics such as
// "highest out-degree first" are one Take call away:
//
//	byDegree := func(f *traverse.Frontier) *core.Node {
//		best := 0
//		for i := 1; i < f.Len(); i++ {
//			if f.Peek(i).Degree() > f.Peek(best).Degree() {
//				best = i
//			}
//		}
//		return f.Take(best)
//	}
//
// # Walks
//
// NodeWalk and EdgeWalk are the unrestricted counterpart: no visited set,
// no ordering policy. Each position exposes its full frontier, the caller
// picks the next element, and revisiting is allowed. The seed is given at
// construction, so the first Frontier call is already meaningful.
//
// # Preconditions
//
// Traversals and walks read the graph's adjacency live. Mutating the
// graph while one is in progress is undefined behavior; finish or abandon
// the run first. Abandoning is always safe; no resources are held.
//
// Complexity: Traverse is O(V + E) plus selector cost; walk steps are
// O(deg) per frontier.
package traverse
