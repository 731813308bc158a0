package core

import (
	"fmt"

	"github.com/google/uuid"
)

// AddEdge creates an edge from start to end and wires it into both
// endpoints' adjacency views. start and end accept a *Node or a name;
// unresolved references fail with ErrElementNotFound. Edges are directed
// by default; see WithUndirected and WithEdgeName. When the graph carries
// an edge policy, the policy may veto or transform the edge before any
// state changes.
//
// Adjacency invariants: a directed edge lands in exactly start.outgoing
// and end.incoming; an undirected edge lands in both endpoints'
// bidirectional views, which for a self-loop is one entry, not two.
// Complexity: O(|attrs|) amortized (policy cost excluded).
func (g *Graph) AddEdge(start, end any, attrs Attrs, opts ...EdgeOption) (*Edge, error) {
	from, err := g.resolveNode(start)
	if err != nil {
		return nil, err
	}
	to, err := g.resolveNode(end)
	if err != nil {
		return nil, err
	}
	if err = validateAttrs(attrs); err != nil {
		return nil, err
	}

	e := &Edge{start: from, end: to, directed: true, attrs: attrs.Clone()}
	for _, opt := range opts {
		opt(e)
	}
	if e.name == "" {
		e.name = edgeNamePrefix + uuid.NewString()
	}
	if _, exists := g.edges[e.name]; exists {
		return nil, fmt.Errorf("%w: edge %q", ErrDuplicateName, e.name)
	}
	if g.policy != nil {
		if err = g.policy.Admit(g, e); err != nil {
			return nil, err
		}
	}

	g.edges[e.name] = e
	g.edgeOrder = append(g.edgeOrder, e)
	e.attach()

	return e, nil
}

// RemoveEdge detaches the edge from both endpoints' adjacency views and
// removes it from storage. Accepts an *Edge or a name.
// Complexity: O(E) for order compaction.
func (g *Graph) RemoveEdge(ref any) error {
	e, err := g.resolveEdge(ref)
	if err != nil {
		return err
	}
	g.unlinkEdge(e)

	return nil
}

// unlinkEdge removes e from adjacency and storage. Callers have already
// resolved ownership.
func (g *Graph) unlinkEdge(e *Edge) {
	e.detach()
	delete(g.edges, e.name)
	g.edgeOrder = dropEdge(g.edgeOrder, e)
}

// Edge returns the edge with the given name, or ErrElementNotFound.
func (g *Graph) Edge(name string) (*Edge, error) {
	e, ok := g.edges[name]
	if !ok {
		return nil, fmt.Errorf("%w: edge %q", ErrElementNotFound, name)
	}

	return e, nil
}

// HasEdge reports whether an edge with the given name exists.
func (g *Graph) HasEdge(name string) bool {
	_, ok := g.edges[name]

	return ok
}

// Edges returns all edges in insertion order. The slice is fresh; the
// edges are live.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// SearchEdges returns the edges whose attribute bag is a superset of want,
// in insertion order. Each call produces a fresh slice.
// Complexity: O(E · |want|).
func (g *Graph) SearchEdges(want Attrs) []*Edge {
	var out []*Edge
	for _, e := range g.edgeOrder {
		if e.attrs.Matches(want) {
			out = append(out, e)
		}
	}

	return out
}

// CommonEdges returns the edges incident to both a and b, sorted by edge
// name. When a == b this is the set of self-loops on that node.
func (g *Graph) CommonEdges(a, b any) ([]*Edge, error) {
	na, err := g.resolveNode(a)
	if err != nil {
		return nil, err
	}
	nb, err := g.resolveNode(b)
	if err != nil {
		return nil, err
	}

	common := make(map[string]*Edge)
	for _, e := range na.Edges() {
		if na == nb {
			if e.start == na && e.end == na {
				common[e.name] = e
			}

			continue
		}
		if e.incidentTo(nb) {
			common[e.name] = e
		}
	}

	return sortedEdges(common), nil
}

// Size reports the number of edges in the graph.
func (g *Graph) Size() int { return len(g.edges) }

// resolveEdge maps a reference (either *Edge or name string) to an edge
// owned by this graph.
func (g *Graph) resolveEdge(ref any) (*Edge, error) {
	switch v := ref.(type) {
	case *Edge:
		if v == nil {
			return nil, ErrNilElement
		}
		if g.edges[v.name] != v {
			return nil, fmt.Errorf("%w: edge %q", ErrElementNotFound, v.name)
		}

		return v, nil
	case string:
		return g.Edge(v)
	case nil:
		return nil, ErrNilElement
	default:
		return nil, fmt.Errorf("%w: edge reference of type %T", ErrInvalidReference, ref)
	}
}

func dropEdge(s []*Edge, e *Edge) []*Edge {
	for i, v := range s {
		if v == e {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
