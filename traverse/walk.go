package traverse

import (
	"fmt"

	"github.com/PatrickLaban/graphine/core"
)

// Walks are the interactive counterpart to a traversal: the caller, not a
// selector, decides every step, and nothing is deduplicated against
// history: a walk may revisit nodes and edges freely. Each step exposes
// the full frontier reachable from the current position; the caller picks
// one element and the walk advances. Abandoning a walk at any point needs
// no cleanup.

// NodeWalk steps node-to-node across crossable edges.
type NodeWalk struct {
	g   *core.Graph
	cur *core.Node
}

// NewNodeWalk creates a walk positioned at start (a *core.Node or name).
// The seed is required up front; the first Frontier call is immediately
// meaningful.
func NewNodeWalk(g *core.Graph, start any) (*NodeWalk, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n, err := g.Node(nameOf(g, start))
	if err != nil {
		return nil, err
	}

	return &NodeWalk{g: g, cur: n}, nil
}

// Position returns the node the walk currently stands on.
func (w *NodeWalk) Position() *core.Node { return w.cur }

// Frontier returns the nodes reachable from the current position by
// crossing one edge. Recomputed per call against the live graph; an empty
// frontier means the walk is stuck.
func (w *NodeWalk) Frontier() []*core.Node {
	return neighbors(w.cur, false)
}

// Step moves the walk to next, which must be in the current frontier.
// Returns the new frontier. Fails with ErrNotInFrontier otherwise,
// leaving the position unchanged.
func (w *NodeWalk) Step(next any) ([]*core.Node, error) {
	n, err := w.g.Node(nameOf(w.g, next))
	if err != nil {
		return nil, err
	}
	for _, cand := range w.Frontier() {
		if cand == n {
			w.cur = n

			return w.Frontier(), nil
		}
	}

	return nil, fmt.Errorf("%w: node %q from %q", ErrNotInFrontier, n.Name(), w.cur.Name())
}

// EdgeWalk steps along edges, exposing the crossable edges at each
// position rather than the nodes behind them. This is the stepping
// surface a state-machine simulator wants: inspect the transitions,
// choose one, land on its far end.
type EdgeWalk struct {
	g   *core.Graph
	cur *core.Node
}

// NewEdgeWalk creates an edge walk positioned at start (a *core.Node or
// name).
func NewEdgeWalk(g *core.Graph, start any) (*EdgeWalk, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n, err := g.Node(nameOf(g, start))
	if err != nil {
		return nil, err
	}

	return &EdgeWalk{g: g, cur: n}, nil
}

// Position returns the node the walk currently stands on.
func (w *EdgeWalk) Position() *core.Node { return w.cur }

// Frontier returns the edges crossable from the current position:
// outgoing directed edges plus incident undirected ones.
func (w *EdgeWalk) Frontier() []*core.Edge {
	out := make([]*core.Edge, 0, len(w.cur.Outgoing())+len(w.cur.Bidirectional()))
	out = append(out, w.cur.Outgoing()...)
	out = append(out, w.cur.Bidirectional()...)

	return out
}

// Step crosses the given edge (an *core.Edge or name) from the current
// position and returns the new frontier. Fails with ErrNotInFrontier if
// the edge is not crossable from here.
func (w *EdgeWalk) Step(edge any) ([]*core.Edge, error) {
	e, err := w.resolveEdge(edge)
	if err != nil {
		return nil, err
	}
	for _, cand := range w.Frontier() {
		if cand != e {
			continue
		}
		next, oErr := e.OtherEnd(w.cur)
		if oErr != nil {
			return nil, oErr
		}
		w.cur = next

		return w.Frontier(), nil
	}

	return nil, fmt.Errorf("%w: edge %q from %q", ErrNotInFrontier, e.Name(), w.cur.Name())
}

func (w *EdgeWalk) resolveEdge(ref any) (*core.Edge, error) {
	switch v := ref.(type) {
	case *core.Edge:
		if v == nil {
			return nil, core.ErrNilElement
		}

		return v, nil
	case string:
		return w.g.Edge(v)
	default:
		return nil, fmt.Errorf("%w: edge reference of type %T", core.ErrInvalidReference, ref)
	}
}
