package core

import "sort"

// Node represents a vertex in the graph. Its name is the stable identity
// assigned at creation and used for container indexing; the attribute bag
// carries application data and never participates in identity.
type Node struct {
	name  string
	attrs Attrs

	// Adjacency views, keyed by edge name. incoming holds directed edges
	// whose end is this node, outgoing those whose start is this node,
	// bidirectional every undirected edge touching this node.
	incoming      map[string]*Edge
	outgoing      map[string]*Edge
	bidirectional map[string]*Edge
}

func newNode(name string, attrs Attrs) *Node {
	return &Node{
		name:          name,
		attrs:         attrs,
		incoming:      make(map[string]*Edge),
		outgoing:      make(map[string]*Edge),
		bidirectional: make(map[string]*Edge),
	}
}

// Name returns the node's identity.
func (n *Node) Name() string { return n.name }

// Attrs returns the node's live attribute bag. Mutating it changes the
// node's data (and therefore its equivalence key); identity is unaffected.
func (n *Node) Attrs() Attrs { return n.attrs }

// Incoming returns the directed edges ending at this node, sorted by
// edge name.
func (n *Node) Incoming() []*Edge { return sortedEdges(n.incoming) }

// Outgoing returns the directed edges starting at this node, sorted by
// edge name.
func (n *Node) Outgoing() []*Edge { return sortedEdges(n.outgoing) }

// Bidirectional returns the undirected edges touching this node, sorted
// by edge name. An undirected self-loop appears exactly once.
func (n *Node) Bidirectional() []*Edge { return sortedEdges(n.bidirectional) }

// Edges returns the union of all three adjacency views, deduplicated and
// sorted by edge name.
func (n *Node) Edges() []*Edge {
	seen := make(map[string]*Edge, len(n.incoming)+len(n.outgoing)+len(n.bidirectional))
	for name, e := range n.incoming {
		seen[name] = e
	}
	for name, e := range n.outgoing {
		seen[name] = e
	}
	for name, e := range n.bidirectional {
		seen[name] = e
	}

	return sortedEdges(seen)
}

// Degree returns the number of distinct edges incident to this node.
// A self-loop counts once, directed or not.
func (n *Node) Degree() int {
	return len(n.Edges())
}

// Edge represents a relation between two nodes. A self-loop has
// start == end. Direction is fixed at creation (but see Graph.Transpose).
type Edge struct {
	name     string
	start    *Node
	end      *Node
	directed bool
	attrs    Attrs
}

// Name returns the edge's identity.
func (e *Edge) Name() string { return e.name }

// Start returns the tail node (or either endpoint when undirected).
func (e *Edge) Start() *Node { return e.start }

// End returns the head node (or either endpoint when undirected).
func (e *Edge) End() *Node { return e.end }

// Directed reports whether the edge is one-way start→end.
func (e *Edge) Directed() bool { return e.directed }

// Attrs returns the edge's live attribute bag.
func (e *Edge) Attrs() Attrs { return e.attrs }

// OtherEnd returns the endpoint opposite to n. It fails with
// ErrEndpointMismatch when n is not an endpoint, or when the edge is
// directed and n is its head: a directed edge can only be crossed from
// its tail. For a self-loop the other end is n itself.
func (e *Edge) OtherEnd(n *Node) (*Node, error) {
	if n == nil {
		return nil, ErrNilElement
	}
	if e.start == e.end {
		if n != e.start {
			return nil, ErrEndpointMismatch
		}

		return n, nil
	}
	switch n {
	case e.start:
		return e.end, nil
	case e.end:
		if e.directed {
			return nil, ErrEndpointMismatch
		}

		return e.start, nil
	default:
		return nil, ErrEndpointMismatch
	}
}

// attach wires the edge into its endpoints' adjacency views per the
// direction rules: directed updates start.outgoing and end.incoming;
// undirected updates both endpoints' bidirectional views, which for a
// self-loop is a single map entry.
func (e *Edge) attach() {
	if e.directed {
		e.start.outgoing[e.name] = e
		e.end.incoming[e.name] = e

		return
	}
	e.start.bidirectional[e.name] = e
	e.end.bidirectional[e.name] = e
}

// detach is the inverse of attach.
func (e *Edge) detach() {
	if e.directed {
		delete(e.start.outgoing, e.name)
		delete(e.end.incoming, e.name)

		return
	}
	delete(e.start.bidirectional, e.name)
	delete(e.end.bidirectional, e.name)
}

// incidentTo reports whether n is an endpoint of e.
func (e *Edge) incidentTo(n *Node) bool {
	return e.start == n || e.end == n
}

func sortNodesByName(s []*Node) {
	sort.Slice(s, func(i, j int) bool { return s[i].name < s[j].name })
}

func sortedEdges(m map[string]*Edge) []*Edge {
	out := make([]*Edge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}
