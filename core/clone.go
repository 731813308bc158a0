package core

// CloneEmpty returns a new Graph with the same policy but no elements.
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph()
	out.policy = g.policy

	return out
}

// Clone returns a structural deep copy of the graph: same names, same
// topology, attribute bags copied map-by-map (values shared).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()
	for _, n := range g.nodeOrder {
		cp := newNode(n.name, n.attrs.Clone())
		out.nodes[cp.name] = cp
		out.nodeOrder = append(out.nodeOrder, cp)
	}
	for _, e := range g.edgeOrder {
		ce := &Edge{
			name:     e.name,
			start:    out.nodes[e.start.name],
			end:      out.nodes[e.end.name],
			directed: e.directed,
			attrs:    e.attrs.Clone(),
		}
		out.edges[ce.name] = ce
		out.edgeOrder = append(out.edgeOrder, ce)
		ce.attach()
	}

	return out
}
