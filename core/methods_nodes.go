package core

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	nodeNamePrefix = "n:"
	edgeNamePrefix = "e:"
)

// AddNode creates a node with the given name and attributes and stores it.
// An empty name requests a generated one. Returns ErrDuplicateName if the
// name is already taken and ErrReservedAttribute if the bag uses a
// structural key. The attribute map is copied; the caller's map is not
// retained.
// Complexity: O(|attrs|) amortized.
func (g *Graph) AddNode(name string, attrs Attrs) (*Node, error) {
	if err := validateAttrs(attrs); err != nil {
		return nil, err
	}
	if name == "" {
		name = nodeNamePrefix + uuid.NewString()
	}
	if _, exists := g.nodes[name]; exists {
		return nil, fmt.Errorf("%w: node %q", ErrDuplicateName, name)
	}

	n := newNode(name, attrs.Clone())
	g.nodes[name] = n
	g.nodeOrder = append(g.nodeOrder, n)

	return n, nil
}

// RemoveNode deletes the node and, first, every edge incident to it.
// Returns the removed node. Accepts a *Node or a name.
// Complexity: O(deg(v) + V) for order compaction.
func (g *Graph) RemoveNode(ref any) (*Node, error) {
	n, err := g.resolveNode(ref)
	if err != nil {
		return nil, err
	}
	// Cascade: incident edges go before the node does.
	for _, e := range n.Edges() {
		g.unlinkEdge(e)
	}
	delete(g.nodes, n.name)
	g.nodeOrder = dropNode(g.nodeOrder, n)

	return n, nil
}

// Node returns the node with the given name, or ErrElementNotFound.
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: node %q", ErrElementNotFound, name)
	}

	return n, nil
}

// HasNode reports whether a node with the given name exists.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]

	return ok
}

// Nodes returns all nodes in insertion order. The slice is fresh; the
// nodes are live.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// SearchNodes returns the nodes whose attribute bag is a superset of want,
// in insertion order. Each call produces a fresh slice.
// Complexity: O(V · |want|).
func (g *Graph) SearchNodes(want Attrs) []*Node {
	var out []*Node
	for _, n := range g.nodeOrder {
		if n.attrs.Matches(want) {
			out = append(out, n)
		}
	}

	return out
}

// Adjacent returns the distinct nodes reachable from n by crossing one
// edge: ends of outgoing edges and the far side of undirected edges.
// Accepts a *Node or a name. Ordered by node name.
func (g *Graph) Adjacent(ref any) ([]*Node, error) {
	n, err := g.resolveNode(ref)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*Node)
	for _, e := range n.outgoing {
		seen[e.end.name] = e.end
	}
	for _, e := range n.bidirectional {
		other, oErr := e.OtherEnd(n)
		if oErr != nil {
			return nil, oErr
		}
		seen[other.name] = other
	}
	out := make([]*Node, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sortNodesByName(out)

	return out, nil
}

// Order reports the number of nodes in the graph.
func (g *Graph) Order() int { return len(g.nodes) }

// resolveNode maps a reference (either *Node or name string) to a node
// owned by this graph.
func (g *Graph) resolveNode(ref any) (*Node, error) {
	switch v := ref.(type) {
	case *Node:
		if v == nil {
			return nil, ErrNilElement
		}
		if g.nodes[v.name] != v {
			return nil, fmt.Errorf("%w: node %q", ErrElementNotFound, v.name)
		}

		return v, nil
	case string:
		return g.Node(v)
	case nil:
		return nil, ErrNilElement
	default:
		return nil, fmt.Errorf("%w: node reference of type %T", ErrInvalidReference, ref)
	}
}

func dropNode(s []*Node, n *Node) []*Node {
	for i, v := range s {
		if v == n {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
