// Package traverse implements the selector-driven traversal engine over a
// core.Graph: one frontier loop powers depth-first, breadth-first, and
// arbitrary heuristic orders, plus externally driven interactive walks.
package traverse

import (
	"github.com/PatrickLaban/graphine/core"
)

// Traverse runs the unified frontier walk from root: seed the frontier
// with the root, then repeatedly let the selector remove one discovered
// node, yield it, mark it visited, and append its not-yet-visited,
// not-yet-discovered out-neighbors (undirected edges are crossed from
// either side). Each reachable node is visited at most once; the order is
// entirely the selector's choice.
//
// root accepts a *core.Node or a name. The graph must not be mutated
// while the traversal runs.
//
// Returns ErrSelectorContract if the selector removes anything other
// than exactly one frontier element.
// Complexity: O(V + E) plus selector cost.
func Traverse(g *core.Graph, root any, selector Selector, opts ...Option) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if selector == nil {
		return nil, ErrNilSelector
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start, err := g.Node(nameOf(g, root))
	if err != nil {
		return nil, err
	}

	frontier := &Frontier{member: map[string]bool{}}
	frontier.push(start)
	visited := make(map[string]bool, g.Order())
	var order []*core.Node

	for frontier.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return order, o.Ctx.Err()
		default:
		}

		before := frontier.Len()
		cur := selector(frontier)
		if cur == nil || frontier.Len() != before-1 {
			return order, ErrSelectorContract
		}

		order = append(order, cur)
		if err = o.OnVisit(cur); err != nil {
			return order, err
		}
		visited[cur.Name()] = true

		for _, nb := range neighbors(cur, o.UndirectedView) {
			if visited[nb.Name()] || frontier.contains(nb) {
				continue
			}
			if !o.FilterNeighbor(cur, nb) {
				continue
			}
			frontier.push(nb)
		}
	}

	return order, nil
}

// DFS traverses depth-first: the selector pops the newest discovery.
func DFS(g *core.Graph, root any, opts ...Option) ([]*core.Node, error) {
	return Traverse(g, root, PopNewest, opts...)
}

// BFS traverses breadth-first: the selector pops the oldest discovery,
// so all nodes at hop-distance k are yielded before any at k+1.
func BFS(g *core.Graph, root any, opts ...Option) ([]*core.Node, error) {
	return Traverse(g, root, PopOldest, opts...)
}

// neighbors lists the nodes one crossable edge away from n, in the
// deterministic order of the node's adjacency views. With undirectedView
// set, incoming edges count as crossable too.
func neighbors(n *core.Node, undirectedView bool) []*core.Node {
	var out []*core.Node
	seen := map[string]bool{}
	appendOnce := func(v *core.Node) {
		if !seen[v.Name()] {
			seen[v.Name()] = true
			out = append(out, v)
		}
	}
	for _, e := range n.Outgoing() {
		appendOnce(e.End())
	}
	for _, e := range n.Bidirectional() {
		if other, err := e.OtherEnd(n); err == nil {
			appendOnce(other)
		}
	}
	if undirectedView {
		for _, e := range n.Incoming() {
			appendOnce(e.Start())
		}
	}

	return out
}

// nameOf resolves a root reference to a node name for lookup; unknown
// types are forwarded as-is so g.Node reports the miss.
func nameOf(g *core.Graph, ref any) string {
	switch v := ref.(type) {
	case *core.Node:
		if v == nil {
			return ""
		}

		return v.Name()
	case string:
		return v
	default:
		return ""
	}
}
