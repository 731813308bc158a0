package core

import "fmt"

// MoveEdge repoints the edge's endpoints in place, preserving its name,
// attributes, and direction. A nil newStart or newEnd keeps that endpoint.
// Both old and new endpoints' adjacency views are repaired. When the graph
// carries an edge policy, the moved edge is re-admitted; a veto rolls the
// move back, leaving the graph unchanged.
func (g *Graph) MoveEdge(edge, newStart, newEnd any) error {
	e, err := g.resolveEdge(edge)
	if err != nil {
		return err
	}
	from, to := e.start, e.end
	if newStart != nil {
		if from, err = g.resolveNode(newStart); err != nil {
			return err
		}
	}
	if newEnd != nil {
		if to, err = g.resolveNode(newEnd); err != nil {
			return err
		}
	}

	oldStart, oldEnd := e.start, e.end
	e.detach()
	e.start, e.end = from, to
	if g.policy != nil {
		if err = g.policy.Admit(g, e); err != nil {
			e.start, e.end = oldStart, oldEnd
			e.attach()

			return err
		}
	}
	e.attach()

	return nil
}

// ContractEdge collapses the edge and its two endpoints into a single new
// node whose attributes are combine(startAttrs, endAttrs). Every other
// edge incident to either endpoint is repointed to the new node; the edge
// and both original nodes are removed. The edge must be the only
// connection between its endpoints, otherwise ErrAmbiguousContraction is
// returned and nothing is mutated. Self-loops cannot be contracted.
func (g *Graph) ContractEdge(edge any, combine func(start, end Attrs) Attrs) (*Node, error) {
	e, err := g.resolveEdge(edge)
	if err != nil {
		return nil, err
	}
	if combine == nil {
		return nil, fmt.Errorf("%w: nil combine function", ErrInvalidReference)
	}
	if e.start == e.end {
		return nil, fmt.Errorf("%w: self-loop %q", ErrAmbiguousContraction, e.name)
	}
	common, err := g.CommonEdges(e.start, e.end)
	if err != nil {
		return nil, err
	}
	if len(common) != 1 {
		return nil, fmt.Errorf("%w: %d edges connect %q and %q",
			ErrAmbiguousContraction, len(common), e.start.name, e.end.name)
	}

	merged := combine(e.start.attrs.Clone(), e.end.attrs.Clone())
	if err = validateAttrs(merged); err != nil {
		return nil, err
	}

	// Validation is complete; mutate.
	g.unlinkEdge(e)
	node, err := g.AddNode("", merged)
	if err != nil {
		return nil, err
	}
	g.repointIncident(e.start, node)
	g.repointIncident(e.end, node)
	delete(g.nodes, e.start.name)
	delete(g.nodes, e.end.name)
	g.nodeOrder = dropNode(g.nodeOrder, e.start)
	g.nodeOrder = dropNode(g.nodeOrder, e.end)

	return node, nil
}

// repointIncident rewires every edge incident to old so that it touches
// replacement instead. Loops on old become loops on replacement.
func (g *Graph) repointIncident(old, replacement *Node) {
	for _, e := range old.Edges() {
		e.detach()
		if e.start == old {
			e.start = replacement
		}
		if e.end == old {
			e.end = replacement
		}
		e.attach()
	}
}

// Transpose reverses the direction of every directed edge in place.
// Undirected edges are untouched. Transpose is self-inverse: applying it
// twice restores the original directions exactly.
func (g *Graph) Transpose() {
	for _, e := range g.edgeOrder {
		if !e.directed {
			continue
		}
		e.detach()
		e.start, e.end = e.end, e.start
		e.attach()
	}
}
