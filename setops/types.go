// Package setops: error definitions and shared copy helpers for the
// structural graph algebra.
package setops

import (
	"errors"
	"fmt"

	"github.com/PatrickLaban/graphine/core"
)

// Sentinel errors for algebra operations.
var (
	// ErrNilGraph is returned when any operand graph is nil.
	ErrNilGraph = errors.New("setops: graph is nil")

	// ErrElementNotFound is returned when a named element does not belong
	// to the operand graph.
	ErrElementNotFound = errors.New("setops: element not found in graph")
)

// resolveNode maps a *core.Node or name to a node owned by g.
func resolveNode(g *core.Graph, ref any) (*core.Node, error) {
	switch v := ref.(type) {
	case *core.Node:
		if v == nil {
			return nil, fmt.Errorf("%w: nil node", ErrElementNotFound)
		}
		owned, err := g.Node(v.Name())
		if err != nil || owned != v {
			return nil, fmt.Errorf("%w: node %q", ErrElementNotFound, v.Name())
		}

		return v, nil
	case string:
		n, err := g.Node(v)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q", ErrElementNotFound, v)
		}

		return n, nil
	default:
		return nil, fmt.Errorf("%w: node reference of type %T", ErrElementNotFound, ref)
	}
}

// resolveEdge maps a *core.Edge or name to an edge owned by g.
func resolveEdge(g *core.Graph, ref any) (*core.Edge, error) {
	switch v := ref.(type) {
	case *core.Edge:
		if v == nil {
			return nil, fmt.Errorf("%w: nil edge", ErrElementNotFound)
		}
		owned, err := g.Edge(v.Name())
		if err != nil || owned != v {
			return nil, fmt.Errorf("%w: edge %q", ErrElementNotFound, v.Name())
		}

		return v, nil
	case string:
		e, err := g.Edge(v)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %q", ErrElementNotFound, v)
		}

		return e, nil
	default:
		return nil, fmt.Errorf("%w: edge reference of type %T", ErrElementNotFound, ref)
	}
}

// copyNodeInto adds a data-copy of n into out. The original name is kept
// unless it is already taken, in which case a fresh name is generated so
// both copies survive.
func copyNodeInto(out *core.Graph, n *core.Node) (*core.Node, error) {
	name := n.Name()
	if out.HasNode(name) {
		name = ""
	}

	return out.AddNode(name, n.Attrs())
}

// copyEdgeInto adds a data-copy of e into out between the given endpoint
// copies, preserving direction and attributes. The original name is kept
// unless taken.
func copyEdgeInto(out *core.Graph, e *core.Edge, start, end *core.Node) (*core.Edge, error) {
	opts := make([]core.EdgeOption, 0, 2)
	if name := e.Name(); !out.HasEdge(name) {
		opts = append(opts, core.WithEdgeName(name))
	}
	if !e.Directed() {
		opts = append(opts, core.WithUndirected())
	}

	return out.AddEdge(start, end, e.Attrs(), opts...)
}
