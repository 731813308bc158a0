// Package components computes the connectivity structure of a core.Graph:
// weak components (maximal node sets connected when every edge is treated
// as undirected) and strong components (maximal node sets mutually
// reachable along edge directions).
//
// Weak runs one undirected traversal per undiscovered node; since weak
// components partition the node set, every flood claims a whole component
// and the results are disjoint by construction.
//
// Strong uses reachability intersection over the transposed graph: the
// strong component of a node u is the set of nodes reachable from u that
// can also reach u, the latter computed by traversing after an in-place
// Transpose. The graph's edge directions are restored before Strong
// returns, on every path including errors.
//
// Complexity: Weak is O(V + E); Strong is O(C · (V + E)) for C
// components.
package components

import (
	"errors"

	"github.com/PatrickLaban/graphine/core"
	"github.com/PatrickLaban/graphine/traverse"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("components: graph is nil")

// Weak returns the weakly connected components: a partition of the node
// set into disjoint maximal sets, each connected when edge direction is
// ignored. Component order follows node insertion order; so does
// membership order within a component (BFS discovery).
func Weak(g *core.Graph) ([][]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	claimed := make(map[string]bool, g.Order())
	var comps [][]*core.Node
	for _, n := range g.Nodes() {
		if claimed[n.Name()] {
			continue
		}
		comp, err := traverse.BFS(g, n, traverse.WithUndirectedView())
		if err != nil {
			return nil, err
		}
		for _, m := range comp {
			claimed[m.Name()] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Strong returns the strongly connected components. The receiver graph is
// transposed in place during the computation and transposed back before
// returning, so edge directions are unchanged on completion, including
// when an error is returned.
func Strong(g *core.Graph) ([][]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	assigned := make(map[string]bool, g.Order())
	var comps [][]*core.Node
	for _, n := range g.Nodes() {
		if assigned[n.Name()] {
			continue
		}
		forward, err := traverse.BFS(g, n)
		if err != nil {
			return nil, err
		}
		backward, err := reachTransposed(g, n)
		if err != nil {
			return nil, err
		}

		// The strong component of n is forward ∩ backward.
		inBackward := make(map[string]bool, len(backward))
		for _, m := range backward {
			inBackward[m.Name()] = true
		}
		var comp []*core.Node
		for _, m := range forward {
			if inBackward[m.Name()] {
				assigned[m.Name()] = true
				comp = append(comp, m)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// reachTransposed computes the set of nodes that can reach n, by
// traversing from n over the transposed graph. The transpose is undone
// before returning, error or not.
func reachTransposed(g *core.Graph, n *core.Node) ([]*core.Node, error) {
	g.Transpose()
	defer g.Transpose()

	return traverse.BFS(g, n)
}
