package setops

import (
	"github.com/PatrickLaban/graphine/core"
)

// Induce returns the subgraph of g induced by the given nodes (each a
// *core.Node or name): data-copies of those nodes plus every edge whose
// endpoints are both in the set. Unresolved references fail with
// ErrElementNotFound before anything is built.
func Induce(g *core.Graph, nodes ...any) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keep := make(map[string]*core.Node, len(nodes))
	for _, ref := range nodes {
		n, err := resolveNode(g, ref)
		if err != nil {
			return nil, err
		}
		keep[n.Name()] = n
	}

	out := core.NewGraph()
	copies := make(map[string]*core.Node, len(keep))
	// Copy in the operand's enumeration order for reproducible output.
	for _, n := range g.Nodes() {
		if _, ok := keep[n.Name()]; !ok {
			continue
		}
		cp, err := copyNodeInto(out, n)
		if err != nil {
			return nil, err
		}
		copies[n.Name()] = cp
	}
	for _, e := range g.Edges() {
		start, okS := copies[e.Start().Name()]
		end, okE := copies[e.End().Name()]
		if !okS || !okE {
			continue
		}
		if _, err := copyEdgeInto(out, e, start, end); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// InduceEdges returns the subgraph of g induced by the given edges (each
// an *core.Edge or name): data-copies of those edges plus exactly their
// endpoints.
func InduceEdges(g *core.Graph, edges ...any) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keep := make([]*core.Edge, 0, len(edges))
	seen := make(map[string]bool, len(edges))
	for _, ref := range edges {
		e, err := resolveEdge(g, ref)
		if err != nil {
			return nil, err
		}
		if !seen[e.Name()] {
			seen[e.Name()] = true
			keep = append(keep, e)
		}
	}

	out := core.NewGraph()
	copies := make(map[string]*core.Node)
	ensure := func(n *core.Node) (*core.Node, error) {
		if cp, ok := copies[n.Name()]; ok {
			return cp, nil
		}
		cp, err := copyNodeInto(out, n)
		if err != nil {
			return nil, err
		}
		copies[n.Name()] = cp

		return cp, nil
	}
	for _, e := range keep {
		start, err := ensure(e.Start())
		if err != nil {
			return nil, err
		}
		end, err := ensure(e.End())
		if err != nil {
			return nil, err
		}
		if _, err = copyEdgeInto(out, e, start, end); err != nil {
			return nil, err
		}
	}

	return out, nil
}
