// Package paths implements single-source shortest paths over a
// core.Graph: Dijkstra-style relaxation ordered by a min-heap priority
// queue, with edge costs supplied by a caller-provided weight function.
//
// Complexity:
//
//   - Time:  O((V + E) log V): each node is finalized once, each
//     relaxation may push one heap entry, heap ops cost O(log V).
//   - Space: O(V + E) under the lazy-decrease-key strategy (stale heap
//     entries are skipped on pop rather than removed).
//
// Negative weights are rejected with ErrNegativeWeight the moment the
// weight function produces one; there is no negative-cycle handling.
package paths

import (
	"container/heap"
	"fmt"

	"github.com/PatrickLaban/graphine/core"
)

// ShortestPaths computes minimum-cost routes from source (a *core.Node or
// name) to every reachable node. The result maps each reachable node's
// name to its Path; unreachable nodes are absent. The source itself maps
// to {Distance: 0, Edges: nil}.
//
// Edge costs come from the weight function (default: every edge costs 1).
// Directed edges are relaxed start→end only; undirected edges both ways.
// Ties between equal-cost routes resolve by heap order and must not be
// relied upon.
func ShortestPaths(g *core.Graph, source any, opts ...Option) (map[string]Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	src, err := resolveSource(g, source)
	if err != nil {
		return nil, err
	}

	r := &runner{
		g:      g,
		weight: o.Weight,
		dist:   make(map[string]float64, g.Order()),
		prev:   make(map[string]*core.Edge, g.Order()),
		done:   make(map[string]bool, g.Order()),
	}
	if err = r.run(src); err != nil {
		return nil, err
	}

	return r.collect(src), nil
}

// runner holds the mutable state of one ShortestPaths execution.
type runner struct {
	g      *core.Graph
	weight WeightFunc
	dist   map[string]float64    // best known distance per node
	prev   map[string]*core.Edge // edge finalizing that distance
	done   map[string]bool       // distance finalized
	pq     nodePQ
}

// run is the relaxation loop: pop the minimum-distance node, skip stale
// entries, finalize, relax its crossable edges.
func (r *runner) run(src *core.Node) error {
	r.dist[src.Name()] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{node: src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)
		u := item.node
		if r.done[u.Name()] {
			continue // stale lazy-decrease-key entry
		}
		r.done[u.Name()] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the recorded distance of every node one
// crossable edge away from u.
func (r *runner) relax(u *core.Node) error {
	for _, e := range crossable(u) {
		v, err := e.OtherEnd(u)
		if err != nil {
			continue // directed edge pointing at u; not crossable
		}
		w := r.weight(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %q weight=%v", ErrNegativeWeight, e.Name(), w)
		}
		cand := r.dist[u.Name()] + w
		best, seen := r.dist[v.Name()]
		if seen && cand >= best {
			continue
		}
		r.dist[v.Name()] = cand
		r.prev[v.Name()] = e
		heap.Push(&r.pq, &pqItem{node: v, dist: cand})
	}

	return nil
}

// collect rebuilds per-target edge lists by following prev links back to
// the source.
func (r *runner) collect(src *core.Node) map[string]Path {
	out := make(map[string]Path, len(r.dist))
	for name, d := range r.dist {
		var edges []*core.Edge
		for cur := name; cur != src.Name(); {
			e := r.prev[cur]
			edges = append(edges, e)
			if e.Start().Name() == cur {
				cur = e.End().Name()
			} else {
				cur = e.Start().Name()
			}
		}
		reverseEdges(edges)
		out[name] = Path{Distance: d, Edges: edges}
	}

	return out
}

// crossable lists the edges leaving u: outgoing plus incident undirected.
func crossable(u *core.Node) []*core.Edge {
	out := make([]*core.Edge, 0, len(u.Outgoing())+len(u.Bidirectional()))
	out = append(out, u.Outgoing()...)
	out = append(out, u.Bidirectional()...)

	return out
}

func resolveSource(g *core.Graph, source any) (*core.Node, error) {
	switch v := source.(type) {
	case *core.Node:
		if v == nil {
			return nil, ErrSourceNotFound
		}
		if !g.HasNode(v.Name()) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, v.Name())
		}

		return g.Node(v.Name())
	case string:
		n, err := g.Node(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, v)
		}

		return n, nil
	default:
		return nil, fmt.Errorf("%w: reference of type %T", ErrSourceNotFound, source)
	}
}

func reverseEdges(s []*core.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// pqItem pairs a node with its tentative distance for heap ordering.
type pqItem struct {
	node *core.Node
	dist float64
}

// nodePQ is a min-heap of *pqItem ordered by distance ascending, under
// the lazy-decrease-key strategy: improvements push duplicates, stale
// entries are skipped when popped.
type nodePQ []*pqItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
